package form

import "net/http"

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" valid:"required,email"`
	Password string `json:"password" valid:"required"`
}

func (lr *LoginRequest) Validate() error {
	return asError(validateStruct(lr))
}

func (lr *LoginRequest) Bind(r *http.Request) error {
	return lr.Validate()
}

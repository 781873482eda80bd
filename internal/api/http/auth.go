package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
	"github.com/latin-ecom/backoffice-manager/internal/form"
)

type loginPayload struct {
	Token string               `json:"token"`
	User  entity.SanitizedUser `json:"user"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	req := &form.LoginRequest{}
	if err := render.Bind(r, req); err != nil {
		respondBindErr(w, r, err)
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondStoreErr(w, r, err, msgUnauthorized)
		return
	}

	respondData(w, r, loginPayload{Token: token, User: user.Sanitize()})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		respondError(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	respondData(w, r, user.Sanitize())
}

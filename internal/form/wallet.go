package form

import (
	"net/http"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

// UpdateWalletStatusRequest is the body of PATCH /wallet-requests/{id}/status.
// Only the terminal states are accepted: a request can never be moved back
// to Pendiente.
type UpdateWalletStatusRequest struct {
	Status string `json:"status" valid:"required"`
}

func (wr *UpdateWalletStatusRequest) Validate() error {
	fe := validateStruct(wr)
	if fe == nil {
		fe = FieldErrors{}
	}
	status := entity.WalletRequestStatus(wr.Status)
	if wr.Status != "" && status != entity.WalletApproved && status != entity.WalletRejected {
		fe["status"] = "must be Aprobada or Rechazada"
	}
	return asError(fe)
}

func (wr *UpdateWalletStatusRequest) Bind(r *http.Request) error {
	return wr.Validate()
}

func (wr *UpdateWalletStatusRequest) ToEntity() entity.WalletRequestStatus {
	return entity.WalletRequestStatus(wr.Status)
}

package form

import (
	"net/http"
	"time"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

// UpdateConnectionRequest is the partial body of PATCH /connections/{id}.
type UpdateConnectionRequest struct {
	Status   *string `json:"status"`
	LastSync *string `json:"lastSync"`
}

func (cr *UpdateConnectionRequest) Validate() error {
	fe := FieldErrors{}
	if cr.Status != nil && !entity.ValidConnectionStatuses[entity.ConnectionStatus(*cr.Status)] {
		fe["status"] = "unknown connection status"
	}
	if cr.LastSync != nil {
		if _, err := time.Parse(time.RFC3339, *cr.LastSync); err != nil {
			fe["lastSync"] = "must be an RFC3339 timestamp"
		}
	}
	return asError(fe)
}

func (cr *UpdateConnectionRequest) Bind(r *http.Request) error {
	return cr.Validate()
}

func (cr *UpdateConnectionRequest) ToEntity() *entity.ConnectionUpdate {
	upd := &entity.ConnectionUpdate{}
	if cr.Status != nil {
		status := entity.ConnectionStatus(*cr.Status)
		upd.Status = &status
	}
	if cr.LastSync != nil {
		// validated above
		ts, _ := time.Parse(time.RFC3339, *cr.LastSync)
		upd.LastSync = &ts
	}
	return upd
}

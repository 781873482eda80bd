package httpapi

import (
	"net/http"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
	"github.com/latin-ecom/backoffice-manager/internal/report"
)

func (s *Server) listMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := s.repo.Movements().GetMovements(r.Context())
	if err != nil {
		respondStoreErr(w, r, err, msgRequestNotFound)
		return
	}

	q := r.URL.Query()
	movementType := q.Get("type")
	category := q.Get("category")
	tr := report.NewTimeRange(q.Get("from"), q.Get("to"))

	filtered := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if movementType != "" && string(m.Type) != movementType {
			continue
		}
		if category != "" && string(m.Category) != category {
			continue
		}
		if !tr.Contains(m.Date) {
			continue
		}
		filtered = append(filtered, m)
	}

	respondData(w, r, filtered)
}

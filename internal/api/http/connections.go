package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
	"github.com/latin-ecom/backoffice-manager/internal/form"
)

func (s *Server) listConnections(w http.ResponseWriter, r *http.Request) {
	connections, err := s.repo.Connections().GetConnections(r.Context())
	if err != nil {
		respondStoreErr(w, r, err, msgConnectionNotFound)
		return
	}

	status := r.URL.Query().Get("status")

	filtered := make([]entity.Connection, 0, len(connections))
	for _, c := range connections {
		if status != "" && string(c.Status) != status {
			continue
		}
		filtered = append(filtered, c)
	}

	respondData(w, r, filtered)
}

func (s *Server) updateConnection(w http.ResponseWriter, r *http.Request) {
	req := &form.UpdateConnectionRequest{}
	if err := render.Bind(r, req); err != nil {
		respondBindErr(w, r, err)
		return
	}

	connection, err := s.repo.Connections().UpdateConnection(r.Context(), chi.URLParam(r, "connectionID"), req.ToEntity())
	if err != nil {
		respondStoreErr(w, r, err, msgConnectionNotFound)
		return
	}

	respondData(w, r, connection)
}

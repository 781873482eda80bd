package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
	"github.com/latin-ecom/backoffice-manager/internal/form"
)

func (s *Server) listWalletRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.repo.Wallet().GetWalletRequests(r.Context())
	if err != nil {
		respondStoreErr(w, r, err, msgRequestNotFound)
		return
	}

	q := r.URL.Query()
	status := q.Get("status")
	requestType := q.Get("type")

	filtered := make([]entity.WalletRequest, 0, len(requests))
	for _, req := range requests {
		if status != "" && string(req.Status) != status {
			continue
		}
		if requestType != "" && string(req.Type) != requestType {
			continue
		}
		filtered = append(filtered, req)
	}

	respondData(w, r, filtered)
}

func (s *Server) updateWalletRequestStatus(w http.ResponseWriter, r *http.Request) {
	req := &form.UpdateWalletStatusRequest{}
	if err := render.Bind(r, req); err != nil {
		respondBindErr(w, r, err)
		return
	}

	request, err := s.repo.Wallet().UpdateWalletRequestStatus(r.Context(), chi.URLParam(r, "requestID"), req.ToEntity())
	if err != nil {
		respondStoreErr(w, r, err, msgRequestNotFound)
		return
	}

	respondData(w, r, request)
}

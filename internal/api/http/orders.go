package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
	"github.com/latin-ecom/backoffice-manager/internal/form"
	"github.com/latin-ecom/backoffice-manager/internal/report"
)

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.repo.Orders().GetOrders(r.Context())
	if err != nil {
		respondStoreErr(w, r, err, msgOrderNotFound)
		return
	}

	q := r.URL.Query()
	status := q.Get("status")
	paymentMethod := q.Get("paymentMethod")
	search := report.NormalizeSearch(q.Get("search"))
	tr := report.NewTimeRange(q.Get("from"), q.Get("to"))

	filtered := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status.String() != status {
			continue
		}
		if paymentMethod != "" && string(o.PaymentMethod) != paymentMethod {
			continue
		}
		if search != "" && !report.MatchesSearch(search, o.Customer, o.Product, o.ID) {
			continue
		}
		if !tr.Contains(o.CreatedAt) {
			continue
		}
		filtered = append(filtered, o)
	}

	respondData(w, r, filtered)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.repo.Orders().GetOrderById(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		respondStoreErr(w, r, err, msgOrderNotFound)
		return
	}
	respondData(w, r, order)
}

func (s *Server) addOrder(w http.ResponseWriter, r *http.Request) {
	req := &form.AddOrderRequest{}
	if err := render.Bind(r, req); err != nil {
		respondBindErr(w, r, err)
		return
	}

	order, err := s.repo.Orders().AddOrder(r.Context(), req.ToEntity())
	if err != nil {
		respondStoreErr(w, r, err, msgOrderNotFound)
		return
	}

	respondCreated(w, r, order)
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	req := &form.UpdateOrderStatusRequest{}
	if err := render.Bind(r, req); err != nil {
		respondBindErr(w, r, err)
		return
	}

	order, err := s.repo.Orders().UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderID"), req.ToEntity())
	if err != nil {
		respondStoreErr(w, r, err, msgOrderNotFound)
		return
	}

	respondData(w, r, order)
}

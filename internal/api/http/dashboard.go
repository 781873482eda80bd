package httpapi

import (
	"net/http"
	"sort"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
	"github.com/latin-ecom/backoffice-manager/internal/report"
)

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := s.repo.Orders().GetOrders(ctx)
	if err != nil {
		respondStoreErr(w, r, err, msgOrderNotFound)
		return
	}
	movements, err := s.repo.Movements().GetMovements(ctx)
	if err != nil {
		respondStoreErr(w, r, err, msgOrderNotFound)
		return
	}
	products, err := s.repo.Products().GetProducts(ctx)
	if err != nil {
		respondStoreErr(w, r, err, msgProductNotFound)
		return
	}

	q := r.URL.Query()
	tr := report.NewTimeRange(q.Get("from"), q.Get("to"))

	orders = filterOrdersByRange(orders, tr)
	movements = filterMovementsByRange(movements, tr)

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].UpdatedAt.After(products[j].UpdatedAt)
	})

	respondData(w, r, report.CollectDashboardPayload(orders, movements, products))
}

func (s *Server) billing(w http.ResponseWriter, r *http.Request) {
	orders, err := s.repo.Orders().GetOrders(r.Context())
	if err != nil {
		respondStoreErr(w, r, err, msgOrderNotFound)
		return
	}

	q := r.URL.Query()
	tr := report.NewTimeRange(q.Get("from"), q.Get("to"))

	respondData(w, r, report.BillingBreakdown(filterOrdersByRange(orders, tr)))
}

func filterOrdersByRange(orders []entity.Order, tr report.TimeRange) []entity.Order {
	filtered := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if tr.Contains(o.CreatedAt) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func filterMovementsByRange(movements []entity.Movement, tr report.TimeRange) []entity.Movement {
	filtered := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if tr.Contains(m.Date) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

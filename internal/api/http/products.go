package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
	"github.com/latin-ecom/backoffice-manager/internal/form"
	"github.com/latin-ecom/backoffice-manager/internal/report"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.repo.Products().GetProducts(r.Context())
	if err != nil {
		respondStoreErr(w, r, err, msgProductNotFound)
		return
	}

	q := r.URL.Query()
	category := q.Get("category")
	provider := q.Get("provider")
	search := report.NormalizeSearch(q.Get("search"))

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if provider != "" && p.Provider != provider {
			continue
		}
		if search != "" && !report.MatchesSearch(search, p.Name, p.Provider) {
			continue
		}
		filtered = append(filtered, p)
	}

	respondData(w, r, filtered)
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	req := &form.AddProductRequest{}
	if err := render.Bind(r, req); err != nil {
		respondBindErr(w, r, err)
		return
	}

	product, err := s.repo.Products().AddProduct(r.Context(), req.ToEntity())
	if err != nil {
		respondStoreErr(w, r, err, msgProductNotFound)
		return
	}

	respondCreated(w, r, product)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	req := &form.UpdateProductRequest{}
	if err := render.Bind(r, req); err != nil {
		respondBindErr(w, r, err)
		return
	}

	product, err := s.repo.Products().UpdateProduct(r.Context(), chi.URLParam(r, "productID"), req.ToEntity())
	if err != nil {
		respondStoreErr(w, r, err, msgProductNotFound)
		return
	}

	respondData(w, r, product)
}

package store

import (
	"context"
	"fmt"

	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type productStore struct {
	*MemoryStore
}

// Products returns an object implementing dependency.Products interface
func (ms *MemoryStore) Products() dependency.Products {
	return &productStore{MemoryStore: ms}
}

func (ps *productStore) GetProducts(_ context.Context) ([]entity.Product, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return append([]entity.Product(nil), ps.products...), nil
}

func (ps *productStore) GetProductById(_ context.Context, id string) (*entity.Product, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	for i := range ps.products {
		if ps.products[i].ID == id {
			prd := ps.products[i]
			return &prd, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

func (ps *productStore) AddProduct(_ context.Context, prd *entity.ProductNew) (*entity.Product, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	product := entity.Product{
		ID:             newID("PRD"),
		Name:           prd.Name,
		Category:       prd.Category,
		Provider:       prd.Provider,
		Cost:           prd.Cost,
		SuggestedPrice: prd.SuggestedPrice,
		Stock:          prd.Stock,
		ShippingTime:   prd.ShippingTime,
		UpdatedAt:      ps.now(),
		Rating:         prd.Rating,
	}
	ps.products = append([]entity.Product{product}, ps.products...)
	return &product, nil
}

func (ps *productStore) UpdateProduct(_ context.Context, id string, upd *entity.ProductUpdate) (*entity.Product, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for i := range ps.products {
		if ps.products[i].ID != id {
			continue
		}
		prd := &ps.products[i]
		if upd.Name != nil {
			prd.Name = *upd.Name
		}
		if upd.Category != nil {
			prd.Category = *upd.Category
		}
		if upd.Provider != nil {
			prd.Provider = *upd.Provider
		}
		if upd.Cost != nil {
			prd.Cost = *upd.Cost
		}
		if upd.SuggestedPrice != nil {
			prd.SuggestedPrice = *upd.SuggestedPrice
		}
		if upd.Stock != nil {
			prd.Stock = *upd.Stock
		}
		if upd.ShippingTime != nil {
			prd.ShippingTime = *upd.ShippingTime
		}
		if upd.Rating != nil {
			prd.Rating = *upd.Rating
		}
		// partial updates always refresh the timestamp
		prd.UpdatedAt = ps.now()
		out := *prd
		return &out, nil
	}
	return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

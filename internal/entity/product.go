package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item offered to dropshippers.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Provider       string          `json:"provider"`
	Cost           decimal.Decimal `json:"cost"`
	SuggestedPrice decimal.Decimal `json:"suggestedPrice"`
	Stock          int             `json:"stock"`
	ShippingTime   string          `json:"shippingTime"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Rating         decimal.Decimal `json:"rating"`
}

// ProductNew carries the validated fields for product creation.
type ProductNew struct {
	Name           string
	Category       string
	Provider       string
	Cost           decimal.Decimal
	SuggestedPrice decimal.Decimal
	Stock          int
	ShippingTime   string
	Rating         decimal.Decimal
}

// ProductUpdate is a partial update. Nil fields are left untouched; any
// update refreshes the product timestamp.
type ProductUpdate struct {
	Name           *string
	Category       *string
	Provider       *string
	Cost           *decimal.Decimal
	SuggestedPrice *decimal.Decimal
	Stock          *int
	ShippingTime   *string
	Rating         *decimal.Decimal
}

package form

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

// AddProductRequest carries the body of POST /products.
type AddProductRequest struct {
	Name           string   `json:"name" valid:"required"`
	Category       string   `json:"category" valid:"required"`
	Provider       string   `json:"provider" valid:"required"`
	Cost           float64  `json:"cost"`
	SuggestedPrice float64  `json:"suggestedPrice"`
	Stock          int      `json:"stock"`
	ShippingTime   string   `json:"shippingTime" valid:"required"`
	Rating         *float64 `json:"rating"`
}

func (pr *AddProductRequest) Validate() error {
	fe := validateStruct(pr)
	if fe == nil {
		fe = FieldErrors{}
	}
	if pr.Cost <= 0 {
		fe["cost"] = "must be positive"
	}
	if pr.SuggestedPrice <= 0 {
		fe["suggestedPrice"] = "must be positive"
	}
	if pr.Stock < 0 {
		fe["stock"] = "must not be negative"
	}
	if pr.Rating != nil && (*pr.Rating < 0 || *pr.Rating > 5) {
		fe["rating"] = "must be between 0 and 5"
	}
	return asError(fe)
}

func (pr *AddProductRequest) Bind(r *http.Request) error {
	return pr.Validate()
}

// ToEntity converts the validated request. Rating defaults to 0.
func (pr *AddProductRequest) ToEntity() *entity.ProductNew {
	rating := decimal.Zero
	if pr.Rating != nil {
		rating = decimal.NewFromFloat(*pr.Rating)
	}
	return &entity.ProductNew{
		Name:           pr.Name,
		Category:       pr.Category,
		Provider:       pr.Provider,
		Cost:           decimal.NewFromFloat(pr.Cost),
		SuggestedPrice: decimal.NewFromFloat(pr.SuggestedPrice),
		Stock:          pr.Stock,
		ShippingTime:   pr.ShippingTime,
		Rating:         rating,
	}
}

// UpdateProductRequest is the partial body of PATCH /products/{id}.
type UpdateProductRequest struct {
	Name           *string  `json:"name"`
	Category       *string  `json:"category"`
	Provider       *string  `json:"provider"`
	Cost           *float64 `json:"cost"`
	SuggestedPrice *float64 `json:"suggestedPrice"`
	Stock          *int     `json:"stock"`
	ShippingTime   *string  `json:"shippingTime"`
	Rating         *float64 `json:"rating"`
}

func (pr *UpdateProductRequest) Validate() error {
	fe := FieldErrors{}
	if pr.Name != nil && *pr.Name == "" {
		fe["name"] = "must not be empty"
	}
	if pr.Category != nil && *pr.Category == "" {
		fe["category"] = "must not be empty"
	}
	if pr.Provider != nil && *pr.Provider == "" {
		fe["provider"] = "must not be empty"
	}
	if pr.ShippingTime != nil && *pr.ShippingTime == "" {
		fe["shippingTime"] = "must not be empty"
	}
	if pr.Cost != nil && *pr.Cost <= 0 {
		fe["cost"] = "must be positive"
	}
	if pr.SuggestedPrice != nil && *pr.SuggestedPrice <= 0 {
		fe["suggestedPrice"] = "must be positive"
	}
	if pr.Stock != nil && *pr.Stock < 0 {
		fe["stock"] = "must not be negative"
	}
	if pr.Rating != nil && (*pr.Rating < 0 || *pr.Rating > 5) {
		fe["rating"] = "must be between 0 and 5"
	}
	return asError(fe)
}

func (pr *UpdateProductRequest) Bind(r *http.Request) error {
	return pr.Validate()
}

func (pr *UpdateProductRequest) ToEntity() *entity.ProductUpdate {
	upd := &entity.ProductUpdate{
		Name:         pr.Name,
		Category:     pr.Category,
		Provider:     pr.Provider,
		Stock:        pr.Stock,
		ShippingTime: pr.ShippingTime,
	}
	if pr.Cost != nil {
		cost := decimal.NewFromFloat(*pr.Cost)
		upd.Cost = &cost
	}
	if pr.SuggestedPrice != nil {
		price := decimal.NewFromFloat(*pr.SuggestedPrice)
		upd.SuggestedPrice = &price
	}
	if pr.Rating != nil {
		rating := decimal.NewFromFloat(*pr.Rating)
		upd.Rating = &rating
	}
	return upd
}

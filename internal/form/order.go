package form

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

// AddOrderRequest carries the body of POST /orders. Status defaults to
// Pendiente when omitted.
type AddOrderRequest struct {
	Store         string  `json:"store" valid:"required"`
	Product       string  `json:"product" valid:"required"`
	Customer      string  `json:"customer" valid:"required"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod" valid:"required"`
	Cost          float64 `json:"cost"`
	ShippingCost  float64 `json:"shippingCost"`
	SalePrice     float64 `json:"salePrice"`
	TrackingCode  string  `json:"trackingCode"`
}

func (or *AddOrderRequest) Validate() error {
	fe := validateStruct(or)
	if fe == nil {
		fe = FieldErrors{}
	}
	if or.Status != "" && !entity.ValidOrderStatusNames[entity.OrderStatusName(or.Status)] {
		fe["status"] = "unknown order status"
	}
	if or.PaymentMethod != "" && !entity.ValidPaymentMethodNames[entity.PaymentMethodName(or.PaymentMethod)] {
		fe["paymentMethod"] = "must be TC or COD"
	}
	if or.Cost <= 0 {
		fe["cost"] = "must be positive"
	}
	if or.ShippingCost < 0 {
		fe["shippingCost"] = "must not be negative"
	}
	if or.SalePrice <= 0 {
		fe["salePrice"] = "must be positive"
	}
	return asError(fe)
}

func (or *AddOrderRequest) Bind(r *http.Request) error {
	return or.Validate()
}

func (or *AddOrderRequest) ToEntity() *entity.OrderNew {
	status := entity.OrderPending
	if or.Status != "" {
		status = entity.OrderStatusName(or.Status)
	}
	return &entity.OrderNew{
		Store:         or.Store,
		Product:       or.Product,
		Customer:      or.Customer,
		Status:        status,
		PaymentMethod: entity.PaymentMethodName(or.PaymentMethod),
		Cost:          decimal.NewFromFloat(or.Cost),
		ShippingCost:  decimal.NewFromFloat(or.ShippingCost),
		SalePrice:     decimal.NewFromFloat(or.SalePrice),
		TrackingCode:  or.TrackingCode,
	}
}

// UpdateOrderStatusRequest is the body of PATCH /orders/{id}/status. Both
// fields are optional; present fields are applied in place.
type UpdateOrderStatusRequest struct {
	Status       *string `json:"status"`
	TrackingCode *string `json:"trackingCode"`
}

func (ur *UpdateOrderStatusRequest) Validate() error {
	fe := FieldErrors{}
	if ur.Status != nil && !entity.ValidOrderStatusNames[entity.OrderStatusName(*ur.Status)] {
		fe["status"] = "unknown order status"
	}
	return asError(fe)
}

func (ur *UpdateOrderStatusRequest) Bind(r *http.Request) error {
	return ur.Validate()
}

func (ur *UpdateOrderStatusRequest) ToEntity() *entity.OrderStatusUpdate {
	upd := &entity.OrderStatusUpdate{
		TrackingCode: ur.TrackingCode,
	}
	if ur.Status != nil {
		status := entity.OrderStatusName(*ur.Status)
		upd.Status = &status
	}
	return upd
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusName is the custom type to enforce enum-like behavior
type OrderStatusName string

func (osn OrderStatusName) String() string {
	return string(osn)
}

const (
	OrderPending         OrderStatusName = "Pendiente"
	OrderRegisterPayment OrderStatusName = "Registrar pago"
	OrderConfirmed       OrderStatusName = "Confirmado"
	OrderPrepared        OrderStatusName = "Preparado"
	OrderDispatched      OrderStatusName = "Despachado"
	OrderDelivered       OrderStatusName = "Entregado"
	OrderInReview        OrderStatusName = "En revisión"
	OrderCancelled       OrderStatusName = "Cancelado"
)

// ValidOrderStatusNames is a set of valid order status names
var ValidOrderStatusNames = map[OrderStatusName]bool{
	OrderPending:         true,
	OrderRegisterPayment: true,
	OrderConfirmed:       true,
	OrderPrepared:        true,
	OrderDispatched:      true,
	OrderDelivered:       true,
	OrderInReview:        true,
	OrderCancelled:       true,
}

// PaymentMethodName is the payment method enum. COD orders carry an extra
// commission in the billing breakdown.
type PaymentMethodName string

const (
	PaymentMethodCard PaymentMethodName = "TC"
	PaymentMethodCOD  PaymentMethodName = "COD"
)

var ValidPaymentMethodNames = map[PaymentMethodName]bool{
	PaymentMethodCard: true,
	PaymentMethodCOD:  true,
}

// Order is a dropshipping order routed through a connected store.
// Orders are created with a server-generated id and timestamp, mutated in
// place via status updates and never deleted.
type Order struct {
	ID            string            `json:"id"`
	Store         string            `json:"store"`
	Product       string            `json:"product"`
	Customer      string            `json:"customer"`
	CreatedAt     time.Time         `json:"createdAt"`
	Status        OrderStatusName   `json:"status"`
	PaymentMethod PaymentMethodName `json:"paymentMethod"`
	Cost          decimal.Decimal   `json:"cost"`
	ShippingCost  decimal.Decimal   `json:"shippingCost"`
	SalePrice     decimal.Decimal   `json:"salePrice"`
	TrackingCode  string            `json:"trackingCode,omitempty"`
}

// OrderNew carries the validated fields for order creation.
type OrderNew struct {
	Store         string
	Product       string
	Customer      string
	Status        OrderStatusName
	PaymentMethod PaymentMethodName
	Cost          decimal.Decimal
	ShippingCost  decimal.Decimal
	SalePrice     decimal.Decimal
	TrackingCode  string
}

// OrderStatusUpdate mutates status and/or tracking code in place.
// Nil fields are left untouched.
type OrderStatusUpdate struct {
	Status       *OrderStatusName
	TrackingCode *string
}

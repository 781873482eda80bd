// Package report computes the dashboard and billing aggregations. Outputs
// are derived on every request from the current order set, never persisted.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

// Commission rates are placeholder business rules carried over as-is: the
// platform keeps 5% of revenue, COD orders pay an extra 3% of sale price.
var (
	platformFeeRate   = decimal.NewFromFloat(0.05)
	codCommissionRate = decimal.NewFromFloat(0.03)
)

// Billing breakdown line item names, in response order.
const (
	LineTotalRevenue  = "Facturación total"
	LineProductCosts  = "Costos de producto"
	LinePlatformFees  = "Comisiones plataforma"
	LineCODCommission = "Comisión COD"
	LineShipping      = "Envíos"
	LineNetProfit     = "Ganancia neta"
)

type OrderStatusSummaryItem struct {
	Status entity.OrderStatusName `json:"status"`
	Value  int                    `json:"value"`
}

type TopProductSummary struct {
	Product string          `json:"product"`
	Units   int             `json:"units"`
	Revenue decimal.Decimal `json:"revenue"`
}

type BillingBreakdownItem struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardPayload combines the filtered records with the aggregations
// computed over the filtered orders.
type DashboardPayload struct {
	Orders             []entity.Order           `json:"orders"`
	Movements          []entity.Movement        `json:"movements"`
	Products           []entity.Product         `json:"products"`
	OrderStatusSummary []OrderStatusSummaryItem `json:"orderStatusSummary"`
	TopProducts        []TopProductSummary      `json:"topProducts"`
	BillingBreakdown   []BillingBreakdownItem   `json:"billingBreakdown"`
}

// OrderStatusSummary counts orders per distinct status present, sorted
// lexicographically by status label. Absent statuses are not zero-filled.
func OrderStatusSummary(orders []entity.Order) []OrderStatusSummaryItem {
	counts := make(map[entity.OrderStatusName]int)
	for _, order := range orders {
		counts[order.Status]++
	}

	items := make([]OrderStatusSummaryItem, 0, len(counts))
	for status, value := range counts {
		items = append(items, OrderStatusSummaryItem{Status: status, Value: value})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Status < items[j].Status
	})
	return items
}

// TopProducts rolls up unit count and cumulative revenue per product name,
// sorted descending by units. Ties keep first-seen order.
func TopProducts(orders []entity.Order) []TopProductSummary {
	index := make(map[string]int)
	items := make([]TopProductSummary, 0)
	for _, order := range orders {
		i, ok := index[order.Product]
		if !ok {
			index[order.Product] = len(items)
			items = append(items, TopProductSummary{Product: order.Product})
			i = len(items) - 1
		}
		items[i].Units++
		items[i].Revenue = items[i].Revenue.Add(order.SalePrice)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Units > items[j].Units
	})
	return items
}

// BillingBreakdown produces the six fixed line items. Sums are exact
// decimals and each line is rounded to 2 places at the end, so the result
// is deterministic and independent of order.
func BillingBreakdown(orders []entity.Order) []BillingBreakdownItem {
	var totalRevenue, productCosts, shippingCosts, codCommission decimal.Decimal
	for _, order := range orders {
		totalRevenue = totalRevenue.Add(order.SalePrice)
		productCosts = productCosts.Add(order.Cost)
		shippingCosts = shippingCosts.Add(order.ShippingCost)
		if order.PaymentMethod == entity.PaymentMethodCOD {
			codCommission = codCommission.Add(order.SalePrice.Mul(codCommissionRate))
		}
	}
	platformFees := totalRevenue.Mul(platformFeeRate)
	netProfit := totalRevenue.Sub(productCosts).Sub(shippingCosts).Sub(platformFees).Sub(codCommission)

	return []BillingBreakdownItem{
		{Name: LineTotalRevenue, Value: totalRevenue.Round(2)},
		{Name: LineProductCosts, Value: productCosts.Round(2)},
		{Name: LinePlatformFees, Value: platformFees.Round(2)},
		{Name: LineCODCommission, Value: codCommission.Round(2)},
		{Name: LineShipping, Value: shippingCosts.Round(2)},
		{Name: LineNetProfit, Value: netProfit.Round(2)},
	}
}

// CollectDashboardPayload assembles the dashboard response. Pure
// composition over the already filtered inputs.
func CollectDashboardPayload(orders []entity.Order, movements []entity.Movement, products []entity.Product) DashboardPayload {
	if orders == nil {
		orders = []entity.Order{}
	}
	if movements == nil {
		movements = []entity.Movement{}
	}
	if products == nil {
		products = []entity.Product{}
	}
	return DashboardPayload{
		Orders:             orders,
		Movements:          movements,
		Products:           products,
		OrderStatusSummary: OrderStatusSummary(orders),
		TopProducts:        TopProducts(orders),
		BillingBreakdown:   BillingBreakdown(orders),
	}
}

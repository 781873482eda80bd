package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type orderStore struct {
	*MemoryStore
}

// Orders returns an object implementing dependency.Orders interface
func (ms *MemoryStore) Orders() dependency.Orders {
	return &orderStore{MemoryStore: ms}
}

func (os *orderStore) GetOrders(_ context.Context) ([]entity.Order, error) {
	os.mu.RLock()
	defer os.mu.RUnlock()

	orders := append([]entity.Order(nil), os.orders...)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (os *orderStore) GetOrderById(_ context.Context, id string) (*entity.Order, error) {
	os.mu.RLock()
	defer os.mu.RUnlock()
	for i := range os.orders {
		if os.orders[i].ID == id {
			order := os.orders[i]
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

func (os *orderStore) AddOrder(_ context.Context, orderNew *entity.OrderNew) (*entity.Order, error) {
	os.mu.Lock()
	defer os.mu.Unlock()

	status := orderNew.Status
	if status == "" {
		status = entity.OrderPending
	}
	order := entity.Order{
		ID:            newID("ORD"),
		Store:         orderNew.Store,
		Product:       orderNew.Product,
		Customer:      orderNew.Customer,
		CreatedAt:     os.now(),
		Status:        status,
		PaymentMethod: orderNew.PaymentMethod,
		Cost:          orderNew.Cost,
		ShippingCost:  orderNew.ShippingCost,
		SalePrice:     orderNew.SalePrice,
		TrackingCode:  orderNew.TrackingCode,
	}
	os.orders = append([]entity.Order{order}, os.orders...)
	return &order, nil
}

func (os *orderStore) UpdateOrderStatus(_ context.Context, id string, upd *entity.OrderStatusUpdate) (*entity.Order, error) {
	os.mu.Lock()
	defer os.mu.Unlock()

	for i := range os.orders {
		if os.orders[i].ID != id {
			continue
		}
		order := &os.orders[i]
		if upd.Status != nil {
			order.Status = *upd.Status
		}
		if upd.TrackingCode != nil {
			order.TrackingCode = *upd.TrackingCode
		}
		out := *order
		return &out, nil
	}
	return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

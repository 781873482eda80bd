package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

func plainHash(password string) (string, error) {
	return "hash:" + password, nil
}

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	ms, err := New(Config{}, plainHash)
	require.NoError(t, err)
	return ms
}

func TestNewSeedsDataSet(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	products, err := ms.Products().GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	orders, err := ms.Orders().GetOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 5)

	movements, err := ms.Movements().GetMovements(ctx)
	require.NoError(t, err)
	assert.Len(t, movements, 5)

	requests, err := ms.Wallet().GetWalletRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 3)

	connections, err := ms.Connections().GetConnections(ctx)
	require.NoError(t, err)
	assert.Len(t, connections, 3)
}

func TestUsersMatchedCaseInsensitively(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	user, err := ms.Users().GetUserByEmail(ctx, "ANA@LATINECOM.COM")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "hash:admin123", user.PasswordHash)

	_, err = ms.Users().GetUserByEmail(ctx, "nobody@latinecom.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddOrderPrependsAndDefaults(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	order, err := ms.Orders().AddOrder(ctx, &entity.OrderNew{
		Store:         "Tienda Test",
		Product:       "Producto Test",
		Customer:      "Cliente Test",
		PaymentMethod: entity.PaymentMethodCard,
		Cost:          decimal.NewFromInt(10),
		ShippingCost:  decimal.NewFromInt(2),
		SalePrice:     decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{6}$`), order.ID)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	orders, err := ms.Orders().GetOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestGetOrdersSortedNewestFirst(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	orders, err := ms.Orders().GetOrders(ctx)
	require.NoError(t, err)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
}

func TestUpdateOrderStatusPartial(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	status := entity.OrderDispatched
	tracking := "TRK-XYZ"
	order, err := ms.Orders().UpdateOrderStatus(ctx, "ORD-9001", &entity.OrderStatusUpdate{
		Status:       &status,
		TrackingCode: &tracking,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDispatched, order.Status)
	assert.Equal(t, "TRK-XYZ", order.TrackingCode)

	// nil fields leave the order untouched
	order, err = ms.Orders().UpdateOrderStatus(ctx, "ORD-9001", &entity.OrderStatusUpdate{})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDispatched, order.Status)
	assert.Equal(t, "TRK-XYZ", order.TrackingCode)

	_, err = ms.Orders().UpdateOrderStatus(ctx, "ORD-0000", &entity.OrderStatusUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProductRefreshesTimestamp(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ms.SetNow(func() time.Time { return frozen })

	stock := 99
	product, err := ms.Products().UpdateProduct(ctx, "PRD-101", &entity.ProductUpdate{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 99, product.Stock)
	assert.Equal(t, frozen, product.UpdatedAt)

	// untouched fields survive the partial update
	assert.Equal(t, "Faja Reductora Post Parto", product.Name)
}

func TestWalletRequestStateMachine(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	// REQ-501 is seeded Pendiente
	req, err := ms.Wallet().UpdateWalletRequestStatus(ctx, "REQ-501", entity.WalletApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.WalletApproved, req.Status)
	require.NotNil(t, req.ProcessedAt)

	// terminal states reject any further transition
	_, err = ms.Wallet().UpdateWalletRequestStatus(ctx, "REQ-501", entity.WalletRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = ms.Wallet().UpdateWalletRequestStatus(ctx, "REQ-000", entity.WalletApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateConnectionPartial(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	status := entity.ConnectionSyncing
	lastSync := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	conn, err := ms.Connections().UpdateConnection(ctx, "CON-101", &entity.ConnectionUpdate{
		Status:   &status,
		LastSync: &lastSync,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionSyncing, conn.Status)
	assert.Equal(t, lastSync, conn.LastSync)

	_, err = ms.Connections().UpdateConnection(ctx, "CON-000", &entity.ConnectionUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResetRestoresSeedData(t *testing.T) {
	ms := newTestStore(t)
	ctx := context.Background()

	_, err := ms.Products().AddProduct(ctx, &entity.ProductNew{
		Name:           "Extra",
		Category:       "Extra",
		Provider:       "Extra",
		Cost:           decimal.NewFromInt(1),
		SuggestedPrice: decimal.NewFromInt(2),
		Stock:          1,
		ShippingTime:   "24h",
	})
	require.NoError(t, err)

	_, err = ms.Wallet().UpdateWalletRequestStatus(ctx, "REQ-501", entity.WalletApproved)
	require.NoError(t, err)

	ms.Reset()

	products, err := ms.Products().GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	requests, err := ms.Wallet().GetWalletRequests(ctx)
	require.NoError(t, err)
	for _, req := range requests {
		if req.ID == "REQ-501" {
			assert.Equal(t, entity.WalletPending, req.Status)
			assert.Nil(t, req.ProcessedAt)
		}
	}
}

func TestNewIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newID("PRD")
		assert.Regexp(t, regexp.MustCompile(`^PRD-[0-9A-F]{6}$`), id)
		seen[id] = true
	}
	// uuid prefixes collide rarely enough for a hundred draws
	assert.Greater(t, len(seen), 90)
}

package dependency

import (
	"context"
	"time"

	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type (
	Products interface {
		// GetProducts returns products in insertion order, newest first.
		GetProducts(ctx context.Context) ([]entity.Product, error)
		// GetProductById returns a product by its id.
		GetProductById(ctx context.Context, id string) (*entity.Product, error)
		// AddProduct inserts a new product and returns it with generated id
		// and timestamp.
		AddProduct(ctx context.Context, prd *entity.ProductNew) (*entity.Product, error)
		// UpdateProduct applies a partial update and refreshes UpdatedAt.
		UpdateProduct(ctx context.Context, id string, upd *entity.ProductUpdate) (*entity.Product, error)
	}

	Orders interface {
		// GetOrders returns all orders, newest first.
		GetOrders(ctx context.Context) ([]entity.Order, error)
		// GetOrderById returns an order by its id.
		GetOrderById(ctx context.Context, id string) (*entity.Order, error)
		// AddOrder inserts a new order with generated id and server timestamp.
		AddOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.Order, error)
		// UpdateOrderStatus mutates status and/or tracking code in place.
		UpdateOrderStatus(ctx context.Context, id string, upd *entity.OrderStatusUpdate) (*entity.Order, error)
	}

	Movements interface {
		// GetMovements returns ledger entries, newest first.
		GetMovements(ctx context.Context) ([]entity.Movement, error)
	}

	Wallet interface {
		// GetWalletRequests returns wallet requests, newest first.
		GetWalletRequests(ctx context.Context) ([]entity.WalletRequest, error)
		// UpdateWalletRequestStatus moves a pending request to a terminal
		// state and stamps ProcessedAt. Transitions out of a terminal state
		// return ErrInvalidTransition.
		UpdateWalletRequestStatus(ctx context.Context, id string, status entity.WalletRequestStatus) (*entity.WalletRequest, error)
	}

	Connections interface {
		// GetConnections returns storefront connections in insertion order.
		GetConnections(ctx context.Context) ([]entity.Connection, error)
		// UpdateConnection applies a partial update to a connection.
		UpdateConnection(ctx context.Context, id string, upd *entity.ConnectionUpdate) (*entity.Connection, error)
	}

	Users interface {
		// GetUserByEmail matches case-insensitively on email.
		GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
		// GetUserById returns a user by its id.
		GetUserById(ctx context.Context, id string) (*entity.User, error)
	}

	// Repository aggregates the per-aggregate stores.
	Repository interface {
		Products() Products
		Orders() Orders
		Movements() Movements
		Wallet() Wallet
		Connections() Connections
		Users() Users
		Now() time.Time
		// Reset restores the seed data set.
		Reset()
	}
)

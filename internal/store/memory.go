// Package store provides the in-memory repository backing the back-office
// API. Storage is an explicit mock: state is process-local, reset-able to a
// fixed seed data set, and lost on restart.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition is returned on wallet request transitions out of
	// a terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")
)

var _ dependency.Repository = (*MemoryStore)(nil)

// Config holds the seed credentials for the demo accounts.
type Config struct {
	AdminPassword       string `mapstructure:"admin_password"`
	DropshipperPassword string `mapstructure:"dropshipper_password"`
}

// MemoryStore implements dependency.Repository over mutex-guarded slices.
// net/http serves requests concurrently, so every access goes through mu.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	products       []entity.Product
	orders         []entity.Order
	movements      []entity.Movement
	walletRequests []entity.WalletRequest
	connections    []entity.Connection
	users          []entity.User

	seedUsers []entity.User
}

// New creates a store preloaded with the seed data set. hashPassword is used
// once to hash the demo account credentials.
func New(cfg Config, hashPassword func(string) (string, error)) (*MemoryStore, error) {
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = defaultAdminPassword
	}
	if cfg.DropshipperPassword == "" {
		cfg.DropshipperPassword = defaultDropshipperPassword
	}

	ms := &MemoryStore{
		now: func() time.Time { return time.Now().UTC() },
	}

	users, err := seedUsers(cfg, hashPassword)
	if err != nil {
		return nil, fmt.Errorf("can't seed users: %w", err)
	}
	ms.seedUsers = users

	ms.Reset()
	return ms, nil
}

// Reset restores the seed data set.
func (ms *MemoryStore) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	ms.products = seedProducts(now)
	ms.orders = seedOrders(now)
	ms.movements = seedMovements(now)
	ms.walletRequests = seedWalletRequests(now)
	ms.connections = seedConnections(now)
	ms.users = append([]entity.User(nil), ms.seedUsers...)
}

// Now returns the store clock reading.
func (ms *MemoryStore) Now() time.Time {
	return ms.now()
}

// SetNow overrides the store clock, for tests.
func (ms *MemoryStore) SetNow(now func() time.Time) {
	ms.now = now
}

// newID mints a short uppercase id with the given prefix, e.g. ORD-9F21A3.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:6]))
}

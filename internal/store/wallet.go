package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type walletStore struct {
	*MemoryStore
}

// Wallet returns an object implementing dependency.Wallet interface
func (ms *MemoryStore) Wallet() dependency.Wallet {
	return &walletStore{MemoryStore: ms}
}

func (ws *walletStore) GetWalletRequests(_ context.Context) ([]entity.WalletRequest, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	requests := append([]entity.WalletRequest(nil), ws.walletRequests...)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (ws *walletStore) UpdateWalletRequestStatus(_ context.Context, id string, status entity.WalletRequestStatus) (*entity.WalletRequest, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	for i := range ws.walletRequests {
		if ws.walletRequests[i].ID != id {
			continue
		}
		req := &ws.walletRequests[i]
		if req.Status.Terminal() {
			return nil, fmt.Errorf("wallet request %s is already %s: %w", id, req.Status, ErrInvalidTransition)
		}
		req.Status = status
		processedAt := ws.now()
		req.ProcessedAt = &processedAt
		out := *req
		return &out, nil
	}
	return nil, fmt.Errorf("wallet request %s: %w", id, ErrNotFound)
}

package store

import (
	"context"
	"sort"

	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type movementStore struct {
	*MemoryStore
}

// Movements returns an object implementing dependency.Movements interface
func (ms *MemoryStore) Movements() dependency.Movements {
	return &movementStore{MemoryStore: ms}
}

func (mvs *movementStore) GetMovements(_ context.Context) ([]entity.Movement, error) {
	mvs.mu.RLock()
	defer mvs.mu.RUnlock()

	movements := append([]entity.Movement(nil), mvs.movements...)
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.After(movements[j].Date)
	})
	return movements, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type connectionStore struct {
	*MemoryStore
}

// Connections returns an object implementing dependency.Connections interface
func (ms *MemoryStore) Connections() dependency.Connections {
	return &connectionStore{MemoryStore: ms}
}

func (cs *connectionStore) GetConnections(_ context.Context) ([]entity.Connection, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return append([]entity.Connection(nil), cs.connections...), nil
}

func (cs *connectionStore) UpdateConnection(_ context.Context, id string, upd *entity.ConnectionUpdate) (*entity.Connection, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.connections {
		if cs.connections[i].ID != id {
			continue
		}
		conn := &cs.connections[i]
		if upd.Status != nil {
			conn.Status = *upd.Status
		}
		if upd.LastSync != nil {
			conn.LastSync = *upd.LastSync
		}
		out := *conn
		return &out, nil
	}
	return nil, fmt.Errorf("connection %s: %w", id, ErrNotFound)
}

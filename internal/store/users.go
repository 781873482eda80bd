package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/latin-ecom/backoffice-manager/internal/dependency"
	"github.com/latin-ecom/backoffice-manager/internal/entity"
)

type userStore struct {
	*MemoryStore
}

// Users returns an object implementing dependency.Users interface
func (ms *MemoryStore) Users() dependency.Users {
	return &userStore{MemoryStore: ms}
}

func (us *userStore) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()

	email = strings.ToLower(email)
	for i := range us.users {
		if strings.ToLower(us.users[i].Email) == email {
			user := us.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
}

func (us *userStore) GetUserById(_ context.Context, id string) (*entity.User, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()

	for i := range us.users {
		if us.users[i].ID == id {
			user := us.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
}

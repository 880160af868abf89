package repository

import (
	"context"
	"errors"

	"github.com/martijn/birthdays/internal/core/domain"
)

// ErrNotFound is returned by lookups when no record exists for the key.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

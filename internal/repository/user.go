package repository

import (
	"context"
	"errors"

	"user-registry/internal/domain"
)

var (
	// ErrNotFound indicates that no user matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailExists indicates that an insert would duplicate an email address.
	ErrEmailExists = errors.New("email already exists")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

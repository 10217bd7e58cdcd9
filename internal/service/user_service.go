package service

import (
	"context"
	"errors"
	"strings"

	"user-registry/internal/domain"
	"user-registry/internal/repository"
)

var (
	// ErrInvalidInput is returned when a registration is missing a username or email.
	ErrInvalidInput = errors.New("username and email are required")
	// ErrEmailTaken is returned when attempting to register an email that already exists.
	ErrEmailTaken = errors.New("email already taken")
)

// UserService describes user registry operations.
type UserService interface {
	Register(ctx context.Context, username, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, username, email string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" {
		return nil, ErrInvalidInput
	}

	// Pre-check is an optimization; the unique index on email is authoritative.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Active:   true,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

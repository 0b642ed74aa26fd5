package service

import (
	"context"

	"github.com/sumire/commerce/internal/domain"
)

// UserStore defines the user data access interface consumed by UserService.
type UserStore interface {
	Create(ctx context.Context, username, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// UserFinder is the user-existence collaborator consumed by the order
// and notification services. Implementations return domain.ErrNotFound
// for unknown IDs.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// UserService handles user management logic.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create registers a new user.
func (s *UserService) Create(ctx context.Context, username, email string) (*domain.User, error) {
	return s.users.Create(ctx, username, email)
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// List retrieves all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

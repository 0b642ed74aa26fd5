package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumire/commerce/internal/domain"
)

// OrderStore defines the order data access interface consumed by OrderService.
type OrderStore interface {
	Create(ctx context.Context, userID int64, totalAmount float64) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

// OrderService handles order management logic.
type OrderService struct {
	orders OrderStore
	users  UserFinder
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders OrderStore, users UserFinder) *OrderService {
	return &OrderService{orders: orders, users: users}
}

// Create places a new order after confirming the user exists. Nothing
// is persisted for an unknown user.
func (s *OrderService) Create(ctx context.Context, userID int64, totalAmount float64) (*domain.Order, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.UserNotFoundError{UserID: userID}
		}
		return nil, fmt.Errorf("validate order user: %w", err)
	}
	return s.orders.Create(ctx, userID, totalAmount)
}

// Get retrieves an order by ID.
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// ListByUser retrieves all orders placed by the given user.
func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

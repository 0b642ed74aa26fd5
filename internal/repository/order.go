package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/commerce/internal/domain"
)

// OrderRepository handles order data access operations.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order with status "pending".
func (r *OrderRepository) Create(ctx context.Context, userID int64, totalAmount float64) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRowxContext(ctx,
		r.db.Rebind(`INSERT INTO orders (user_id, total_amount, status, created_at)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, user_id, total_amount, status, created_at`),
		userID, totalAmount, domain.OrderStatusPending, time.Now().UTC(),
	).StructScan(&order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

// FindByID retrieves an order by its ID.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order,
		r.db.Rebind(`SELECT id, user_id, total_amount, status, created_at FROM orders WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find order by id %d: %w", id, err)
	}
	return &order, nil
}

// ListByUser retrieves all orders placed by the given user.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := r.db.SelectContext(ctx, &orders,
		r.db.Rebind(`SELECT id, user_id, total_amount, status, created_at
		 FROM orders WHERE user_id = ? ORDER BY id`), userID)
	if err != nil {
		return nil, fmt.Errorf("list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

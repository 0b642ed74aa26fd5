package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumire/commerce/internal/domain"
	"github.com/sumire/commerce/internal/repository"
)

func newOrderService(t *testing.T) (*OrderService, *repository.UserRepository, *repository.OrderRepository) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	return NewOrderService(orderRepo, userRepo), userRepo, orderRepo
}

func TestOrderService_Create(t *testing.T) {
	t.Parallel()

	svc, users, _ := newOrderService(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)

	order, err := svc.Create(ctx, user.ID, 120.50)
	require.NoError(t, err)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, 120.50, order.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestOrderService_Create_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, orders := newOrderService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 9999, 10)

	var userNotFound *domain.UserNotFoundError
	require.ErrorAs(t, err, &userNotFound)
	assert.Equal(t, int64(9999), userNotFound.UserID)

	stored, err := orders.ListByUser(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newOrderService(t)

	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

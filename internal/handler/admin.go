package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/commerce/internal/service"
)

// AdminHandler handles administrative reporting endpoints.
type AdminHandler struct {
	users  *service.UserService
	orders *service.OrderService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(users *service.UserService, orders *service.OrderService) *AdminHandler {
	return &AdminHandler{users: users, orders: orders}
}

// ListUsers returns all registered users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, users)
}

type statsResponse struct {
	TotalUsers   int     `json:"total_users"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Stats aggregates order totals across all users.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.List(ctx)
	if err != nil {
		return err
	}

	stats := statsResponse{TotalUsers: len(users)}
	for _, user := range users {
		orders, err := h.orders.ListByUser(ctx, user.ID)
		if err != nil {
			return err
		}
		stats.TotalOrders += len(orders)
		for _, order := range orders {
			stats.TotalRevenue += order.TotalAmount
		}
	}

	return JSON(c, http.StatusOK, stats)
}

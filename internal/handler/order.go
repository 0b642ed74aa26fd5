package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/commerce/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orders *service.OrderService
	users  *service.UserService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *service.OrderService, users *service.UserService) *OrderHandler {
	return &OrderHandler{orders: orders, users: users}
}

type createOrderRequest struct {
	UserID      int64   `json:"user_id" validate:"required"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

// Create places a new order.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orders.Create(c.Request().Context(), req.UserID, req.TotalAmount)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusCreated, order)
}

// Get returns an order by ID.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, order)
}

// ListByUser returns all orders placed by a user. The user must exist.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	if _, err := h.users.Get(c.Request().Context(), userID); err != nil {
		return err
	}

	orders, err := h.orders.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, orders)
}

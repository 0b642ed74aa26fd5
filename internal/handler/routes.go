package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sumire/commerce/internal/domain"
)

// RegisterRoutes wires all API routes onto the echo instance.
func RegisterRoutes(e *echo.Echo, users *UserHandler, orders *OrderHandler, notifications *NotificationHandler, admin *AdminHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	api.POST("/users", users.Create)
	api.GET("/users", users.List)
	api.GET("/users/:id", users.Get)

	api.POST("/orders", orders.Create)
	api.GET("/orders/:id", orders.Get)
	api.GET("/orders/user/:user_id", orders.ListByUser)

	api.POST("/notifications", notifications.Create)
	api.GET("/notifications/:id", notifications.Get)
	api.GET("/notifications/user/:user_id", notifications.ListByUser)
	api.PUT("/notifications/:id/read", notifications.MarkAsRead)
	api.POST("/notifications/:id/resend", notifications.Resend)

	api.GET("/admin/users", admin.ListUsers)
	api.GET("/admin/stats", admin.Stats)
}

// pathID parses an integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return id, nil
}

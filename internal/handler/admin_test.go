package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminEndpoints_Stats(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	alice := app.createUser(t, "alice", "alice@example.com")
	bob := app.createUser(t, "bob", "bob@example.com")

	for _, order := range []struct {
		userID int64
		amount float64
	}{
		{alice, 10},
		{alice, 20},
		{bob, 5},
	} {
		rec := app.request(t, http.MethodPost, "/api/v1/orders", map[string]any{
			"user_id": order.userID, "total_amount": order.amount,
		}, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	var resp struct {
		Data struct {
			TotalUsers   int     `json:"total_users"`
			TotalOrders  int     `json:"total_orders"`
			TotalRevenue float64 `json:"total_revenue"`
		} `json:"data"`
	}
	rec := app.request(t, http.MethodGet, "/api/v1/admin/stats", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, resp.Data.TotalUsers)
	assert.Equal(t, 3, resp.Data.TotalOrders)
	assert.Equal(t, 35.0, resp.Data.TotalRevenue)
}

func TestAdminEndpoints_ListUsers(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	app.createUser(t, "alice", "alice@example.com")

	var resp struct {
		Data []userPayload `json:"data"`
	}
	rec := app.request(t, http.MethodGet, "/api/v1/admin/users", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp.Data, 1)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	var resp map[string]string
	rec := app.request(t, http.MethodGet, "/health", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp["status"])
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sumire/commerce/internal/provider"
	"github.com/sumire/commerce/internal/repository"
	"github.com/sumire/commerce/internal/service"
)

// testApp bundles a fully wired API over an in-memory database.
type testApp struct {
	echo  *echo.Echo
	users *repository.UserRepository
	out   *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := repository.Open("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repository.InitSchema(context.Background(), db))

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	out := &bytes.Buffer{}
	messageProvider := provider.NewConsoleProvider(out)

	userSvc := service.NewUserService(userRepo)
	orderSvc := service.NewOrderService(orderRepo, userRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, userRepo, messageProvider)

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = NewAppValidator()
	RegisterRoutes(e,
		NewUserHandler(userSvc),
		NewOrderHandler(orderSvc, userSvc),
		NewNotificationHandler(notificationSvc),
		NewAdminHandler(userSvc, orderSvc),
	)

	return &testApp{echo: e, users: userRepo, out: out}
}

// request performs an HTTP request against the app and decodes the
// envelope into out when it is non-nil.
func (a *testApp) request(t *testing.T, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(encoded))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

// createUser registers a user through the API and returns its ID.
func (a *testApp) createUser(t *testing.T, username, email string) int64 {
	t.Helper()

	var resp struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	rec := a.request(t, http.MethodPost, "/api/v1/users", map[string]any{
		"username": username,
		"email":    email,
	}, &resp)
	require.Equal(t, http.StatusCreated, rec.Code)
	return resp.Data.ID
}

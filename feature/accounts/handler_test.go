package accounts

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"party-ledger/core/database"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Account{}))

	svc := NewService(db, zap.NewNop(), "test-secret", time.Hour, "")
	h := NewHandler(svc)

	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(auth.New(auth.Config{Secret: "test-secret"}))
	h.RegisterProtectedRoutes(app)
	return app
}

func TestHandleLogin(t *testing.T) {
	app := setupTestApp(t)

	body := `{"username":"vera","password":"hunter2pass"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "vera", out.Username)
}

func TestHandleLoginBadBody(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleMe(t *testing.T) {
	app := setupTestApp(t)

	// Roundtrip: login, then use the token.
	body := `{"username":"vera","password":"hunter2pass"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	req = httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var id auth.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&id))
	assert.Equal(t, "vera", id.Username)

	// No token, no identity.
	resp, err = app.Test(httptest.NewRequest("GET", "/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

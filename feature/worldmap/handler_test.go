package worldmap

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, admin bool) *fiber.App {
	t.Helper()

	svc, _ := setupService(t)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		auth.SetIdentity(c, auth.Identity{AccountID: 1, Username: "vera", IsAdmin: admin})
		return c.Next()
	})
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleCreateAndList(t *testing.T) {
	app := setupTestApp(t, true)

	req := httptest.NewRequest("POST", "/map/", strings.NewReader(`{"name":"Vault 13","x":12.5,"y":-7}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var marker Marker
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&marker))
	assert.Equal(t, 12.5, marker.X)

	resp, err = app.Test(httptest.NewRequest("GET", "/map/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var markers []Marker
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&markers))
	require.Len(t, markers, 1)
	assert.Equal(t, "Vault 13", markers[0].Name)
}

func TestHandleCreateRequiresAdmin(t *testing.T) {
	app := setupTestApp(t, false)

	req := httptest.NewRequest("POST", "/map/", strings.NewReader(`{"name":"Vault 13"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app := setupTestApp(t, true)

	req := httptest.NewRequest("POST", "/map/", strings.NewReader(`{"name":"Vault 13"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var marker Marker
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&marker))

	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/map/%d", marker.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestHandleDeleteBadID(t *testing.T) {
	app := setupTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/map/not-a-number", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

package party

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"party-ledger/core/bus"
	"party-ledger/core/ledger"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *bus.Bus) {
	t.Helper()

	svc, b := setupService(t)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		auth.SetIdentity(c, auth.Identity{AccountID: 1, Username: "vera"})
		return c.Next()
	})
	NewHandler(svc).RegisterRoutes(app)
	return app, b
}

func doPost(t *testing.T, app *fiber.App, path, body string) (int, ledger.StorageLine) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var line ledger.StorageLine
	_ = json.NewDecoder(resp.Body).Decode(&line)
	return resp.StatusCode, line
}

func TestHandleAddAndList(t *testing.T) {
	app, _ := setupTestApp(t)

	status, line := doPost(t, app, "/party/storage/add", `{"item":"stimpak","quantity":4}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 4, line.Quantity)

	resp, err := app.Test(httptest.NewRequest("GET", "/party/storage/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lines []ledger.StorageLine
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "stimpak", lines[0].ItemKey)
}

func TestHandleAddDefaultsToOne(t *testing.T) {
	app, _ := setupTestApp(t)

	status, line := doPost(t, app, "/party/storage/add", `{"item":"stimpak"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, line.Quantity)
}

func TestHandleRemoveInsufficient(t *testing.T) {
	app, _ := setupTestApp(t)

	status, _ := doPost(t, app, "/party/storage/remove", `{"item":"stimpak","quantity":1}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestHandleMutationsBroadcast(t *testing.T) {
	app, b := setupTestApp(t)

	events := b.Subscribe()
	defer b.Unsubscribe(events)

	status, _ := doPost(t, app, "/party/storage/add", `{"item":"stimpak","quantity":2}`)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = doPost(t, app, "/party/storage/remove", `{"item":"stimpak","quantity":1}`)
	assert.Equal(t, fiber.StatusOK, status)

	// One event per successful mutation, no more.
	assert.Len(t, events, 2)
}

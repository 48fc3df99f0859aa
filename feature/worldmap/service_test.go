package worldmap

import (
	"context"
	"testing"

	"party-ledger/core/apperr"
	"party-ledger/core/bus"
	"party-ledger/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*Service, *bus.Bus) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Marker{}))

	b := bus.New(zap.NewNop())
	return NewService(db, b, zap.NewNop()), b
}

func TestCreateBroadcastsMarker(t *testing.T) {
	svc, b := setupService(t)
	ctx := context.Background()

	events := b.Subscribe()
	defer b.Unsubscribe(events)

	marker, err := svc.Create(ctx, CreateMarkerRequest{Name: "Vault 13", X: 12.5, Y: -7})
	require.NoError(t, err)
	assert.NotZero(t, marker.ID)

	evt := <-events
	assert.Equal(t, bus.EventMapUpdated, evt.Type)
	assert.Equal(t, *marker, evt.Payload)
}

func TestCreateEmptyNameRejected(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateMarkerRequest{Name: " "})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestDeleteBroadcastsRemoval(t *testing.T) {
	svc, b := setupService(t)
	ctx := context.Background()

	marker, err := svc.Create(ctx, CreateMarkerRequest{Name: "Vault 13"})
	require.NoError(t, err)

	events := b.Subscribe()
	defer b.Unsubscribe(events)

	require.NoError(t, svc.Delete(ctx, marker.ID))

	evt := <-events
	assert.Equal(t, bus.EventMapUpdated, evt.Type)
	assert.Equal(t, map[string]uint{"removed": marker.ID}, evt.Payload)

	markers, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, markers)
}

func TestDeleteUnknownMarker(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListReturnsPlacementOrder(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateMarkerRequest{Name: "Vault 13"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateMarkerRequest{Name: "Shady Sands"})
	require.NoError(t, err)

	markers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, first.ID, markers[0].ID)
	assert.Equal(t, second.ID, markers[1].ID)
}

package quests

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
	require.NoError(t, db.AutoMigrate(&Quest{}))

	b := bus.New(zap.NewNop())
	return NewService(db, b, zap.NewNop()), b
}

func TestCreateDerivesKeyAndBroadcasts(t *testing.T) {
	svc, b := setupService(t)
	ctx := context.Background()

	events := b.Subscribe()
	defer b.Unsubscribe(events)

	quest, err := svc.Create(ctx, CreateQuestRequest{Name: "Find the Water Chip"})
	require.NoError(t, err)
	assert.Equal(t, "find-the-water-chip", quest.Key)
	assert.True(t, quest.Active)

	evt := <-events
	assert.Equal(t, bus.EventQuestAdded, evt.Type)
	assert.Equal(t, *quest, evt.Payload)
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateQuestRequest{Name: "Find the Water Chip"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateQuestRequest{Name: "find THE water chip"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateEmptyNameRejected(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateQuestRequest{Name: "   "})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestListActiveSkipsDeactivated(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateQuestRequest{Name: "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateQuestRequest{Name: "Second"})
	require.NoError(t, err)

	_, err = svc.SetActive(ctx, "first", false)
	require.NoError(t, err)

	quests, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, quests, 1)
	assert.Equal(t, "second", quests[0].Key)
}

func TestSetActiveBroadcastsUpdate(t *testing.T) {
	svc, b := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateQuestRequest{Name: "First"})
	require.NoError(t, err)

	events := b.Subscribe()
	defer b.Unsubscribe(events)

	quest, err := svc.SetActive(ctx, "first", false)
	require.NoError(t, err)
	assert.False(t, quest.Active)

	evt := <-events
	assert.Equal(t, bus.EventQuestUpdated, evt.Type)
}

func TestSetActiveUnknownQuest(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.SetActive(context.Background(), "missing", false)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteBroadcastsKey(t *testing.T) {
	svc, b := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateQuestRequest{Name: "First"})
	require.NoError(t, err)

	events := b.Subscribe()
	defer b.Unsubscribe(events)

	require.NoError(t, svc.Delete(ctx, "first"))

	evt := <-events
	assert.Equal(t, bus.EventQuestDeleted, evt.Type)
	assert.Equal(t, map[string]string{"key": "first"}, evt.Payload)

	_, err = svc.Get(ctx, "first")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteUnknownQuest(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

package bus

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// EventType identifies the kind of state change an event announces.
type EventType string

// Event types broadcast on authoritative state changes. Inventory
// mutations are private to the caller and never broadcast.
const (
	EventItemAdded      EventType = "ITEM_ADDED"
	EventItemUpdated    EventType = "ITEM_UPDATED"
	EventItemDeleted    EventType = "ITEM_DELETED"
	EventQuestAdded     EventType = "QUEST_ADDED"
	EventQuestUpdated   EventType = "QUEST_UPDATED"
	EventQuestDeleted   EventType = "QUEST_DELETED"
	EventStorageUpdated EventType = "STORAGE_UPDATED"
	EventMapUpdated     EventType = "MAP_UPDATED"
)

// Event is a typed notification delivered to every connected observer.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// subscriberBuffer is the per-subscriber channel depth. A subscriber
// that falls this far behind starts losing events; delivery is
// best-effort with no replay.
const subscriberBuffer = 16

// Bus fans events out to all current subscribers. Publish never blocks
// the mutating request.
type Bus struct {
	mu     sync.RWMutex
	subs   map[chan Event]struct{}
	logger *zap.Logger
}

// New creates an empty bus.
func New(logger *zap.Logger) *Bus {
	return &Bus{
		subs:   make(map[chan Event]struct{}),
		logger: logger,
	}
}

// Subscribe registers a new observer and returns its event channel.
// The caller must Unsubscribe when done.
func (b *Bus) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes an observer and closes its channel.
func (b *Bus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers one event to every subscriber. Subscribers with a
// full buffer are skipped.
func (b *Bus) Publish(t EventType, payload any) {
	evt := Event{Type: t, Payload: payload, At: time.Now().UTC()}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
			b.logger.Debug("dropping event for slow subscriber",
				zap.String("type", string(t)))
		}
	}
}

// SubscriberCount reports the number of connected observers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

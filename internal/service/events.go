package service

import "sync"

// EventType defines the type of event
type EventType string

const (
	EventEntityAdded         EventType = "entity_added"
	EventEntityRemoved       EventType = "entity_removed"
	EventQuantityUpdated     EventType = "quantity_updated"
	EventTransactionRecorded EventType = "transaction_recorded"
	EventIndexRebuilt        EventType = "index_rebuilt"
	EventSnapshotSaved       EventType = "snapshot_saved"
	EventSnapshotLoaded      EventType = "snapshot_loaded"
)

// Event represents an event that occurred in the system
type Event struct {
	Type       EventType      `json:"type"`
	Collection string         `json:"collection,omitempty"`
	EntityID   int            `json:"entity_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// EventBus allows publishing and subscribing to events. A nil *EventBus
// discards everything published to it.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, ch)
}

// Unsubscribe removes a subscriber
func (eb *EventBus) Unsubscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	for i, sub := range eb.subscribers {
		if sub == ch {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	if eb == nil {
		return
	}
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"coursework/internal/repository"
)

// InventoryLogger is an append-only item log persisted through a Snapshotter
type InventoryLogger[T repository.Entity] struct {
	items  *repository.Repository[T]
	store  repository.Snapshotter[T]
	log    zerolog.Logger
	events *EventBus
}

// NewInventoryLogger creates an empty logger backed by store
func NewInventoryLogger[T repository.Entity](store repository.Snapshotter[T], log zerolog.Logger, events *EventBus) *InventoryLogger[T] {
	return &InventoryLogger[T]{
		items:  repository.New[T]("inventory item"),
		store:  store,
		log:    log.With().Str("component", "inventory").Logger(),
		events: events,
	}
}

// Add appends an item to the log
func (l *InventoryLogger[T]) Add(item T) error {
	if err := l.items.Add(item); err != nil {
		return err
	}

	l.log.Debug().Int("id", item.EntityID()).Msg("item logged")
	l.events.Publish(Event{Type: EventEntityAdded, Collection: l.items.Name(), EntityID: item.EntityID()})
	return nil
}

// GetAll returns the logged items in insertion order
func (l *InventoryLogger[T]) GetAll() []T {
	return l.items.GetAll()
}

// Len returns the number of logged items
func (l *InventoryLogger[T]) Len() int {
	return l.items.Len()
}

// Save writes every item to the store
func (l *InventoryLogger[T]) Save(ctx context.Context) error {
	items := l.items.GetAll()
	if err := l.store.Save(ctx, items); err != nil {
		l.log.Warn().Err(err).Msg("error saving inventory")
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	l.log.Debug().Int("items", len(items)).Msg("inventory saved")
	l.events.Publish(Event{Type: EventSnapshotSaved, Collection: l.items.Name(), Payload: map[string]any{"count": len(items)}})
	return nil
}

// Load replaces the log with the stored items. On failure the log is left
// empty and the error is returned.
func (l *InventoryLogger[T]) Load(ctx context.Context) error {
	l.items = repository.New[T](l.items.Name())

	items, err := l.store.Load(ctx)
	if err != nil {
		l.log.Warn().Err(err).Msg("error loading inventory, starting empty")
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	if err := l.items.LoadAll(items); err != nil {
		l.items = repository.New[T](l.items.Name())
		l.log.Warn().Err(err).Msg("stored inventory rejected, starting empty")
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	l.log.Debug().Int("items", len(items)).Msg("inventory loaded")
	l.events.Publish(Event{Type: EventSnapshotLoaded, Collection: l.items.Name(), Payload: map[string]any{"count": len(items)}})
	return nil
}

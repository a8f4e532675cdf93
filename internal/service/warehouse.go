package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"coursework/internal/domain"
	"coursework/internal/repository"
)

// Shelf holds the stock of one item type
type Shelf[T domain.StockItem] struct {
	items  *repository.Repository[T]
	log    zerolog.Logger
	events *EventBus
}

// NewShelf creates an empty shelf. name labels errors and events.
func NewShelf[T domain.StockItem](name string, log zerolog.Logger, events *EventBus) *Shelf[T] {
	return &Shelf[T]{
		items:  repository.New[T](name),
		log:    log.With().Str("shelf", name).Logger(),
		events: events,
	}
}

// Name returns the shelf name
func (s *Shelf[T]) Name() string {
	return s.items.Name()
}

// Add stocks a new item
func (s *Shelf[T]) Add(item T) error {
	if err := s.items.Add(item); err != nil {
		return err
	}
	s.log.Debug().Int("id", item.EntityID()).Int("quantity", item.Qty()).Msg("item added")
	s.events.Publish(Event{Type: EventEntityAdded, Collection: s.Name(), EntityID: item.EntityID()})
	return nil
}

// Get returns the item with the given id
func (s *Shelf[T]) Get(id int) (T, error) {
	return s.items.GetByID(id)
}

// Items returns every item in insertion order
func (s *Shelf[T]) Items() []T {
	return s.items.GetAll()
}

// Len returns the number of distinct items
func (s *Shelf[T]) Len() int {
	return s.items.Len()
}

// Remove takes an item off the shelf
func (s *Shelf[T]) Remove(id int) error {
	if err := s.items.Remove(id); err != nil {
		return err
	}
	s.log.Debug().Int("id", id).Msg("item removed")
	s.events.Publish(Event{Type: EventEntityRemoved, Collection: s.Name(), EntityID: id})
	return nil
}

// SetQuantity replaces an item's quantity
func (s *Shelf[T]) SetQuantity(id, quantity int) error {
	if err := repository.UpdateQuantity(s.items, id, quantity); err != nil {
		return err
	}
	s.log.Debug().Int("id", id).Int("quantity", quantity).Msg("quantity updated")
	s.events.Publish(Event{
		Type:       EventQuantityUpdated,
		Collection: s.Name(),
		EntityID:   id,
		Payload:    map[string]any{"quantity": quantity},
	})
	return nil
}

// IncreaseStock adds n units to an item
func (s *Shelf[T]) IncreaseStock(id, n int) error {
	if n < 0 {
		return domain.NewInvalidValueError("warehouse.increase_stock", s.Name(), id, "increase amount cannot be negative")
	}
	item, err := s.items.GetByID(id)
	if err != nil {
		return err
	}
	return s.SetQuantity(id, item.Qty()+n)
}

// LowStock returns items whose quantity is below threshold
func (s *Shelf[T]) LowStock(threshold int) []T {
	return s.items.Filter(func(item T) bool {
		return item.Qty() < threshold
	})
}

// WarehouseManager owns one shelf per product type
type WarehouseManager struct {
	Electronics *Shelf[*domain.ElectronicItem]
	Groceries   *Shelf[*domain.GroceryItem]
}

// NewWarehouseManager creates a manager with empty shelves
func NewWarehouseManager(log zerolog.Logger, events *EventBus) *WarehouseManager {
	log = log.With().Str("component", "warehouse").Logger()
	return &WarehouseManager{
		Electronics: NewShelf[*domain.ElectronicItem]("electronic item", log, events),
		Groceries:   NewShelf[*domain.GroceryItem]("grocery item", log, events),
	}
}

// Seed stocks both shelves. It stops at the first error.
func (m *WarehouseManager) Seed(electronics []*domain.ElectronicItem, groceries []*domain.GroceryItem) error {
	for _, item := range electronics {
		if err := m.Electronics.Add(item); err != nil {
			return err
		}
	}
	for _, item := range groceries {
		if err := m.Groceries.Add(item); err != nil {
			return err
		}
	}
	return nil
}

// Describe renders an item as its summary line followed by its details line
func Describe(item domain.StockItem) []string {
	return []string{
		fmt.Sprintf("ID: %d, Name: %s, Quantity: %d", item.EntityID(), item.ItemName(), item.Qty()),
		"  " + item.Details(),
	}
}

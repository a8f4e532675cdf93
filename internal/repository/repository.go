package repository

import (
	"context"
	"slices"

	"coursework/internal/domain"
)

// Entity is anything with a stable integer identity
type Entity interface {
	EntityID() int
}

// Quantified is an entity with a mutable, non-negative quantity
type Quantified interface {
	Entity
	SetQuantity(quantity int)
}

// Snapshotter reads and writes the full entity list of a repository
type Snapshotter[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
}

// Repository is an in-memory keyed collection that preserves insertion order.
// It is not safe for concurrent use.
type Repository[T Entity] struct {
	name    string
	items   map[int]T
	order   []int
	version uint64
}

// New creates an empty repository. name is used in error messages.
func New[T Entity](name string) *Repository[T] {
	if name == "" {
		name = "entity"
	}
	return &Repository[T]{
		name:  name,
		items: make(map[int]T),
	}
}

// Name returns the entity name used in error messages
func (r *Repository[T]) Name() string {
	return r.name
}

// Version increments on every successful mutation
func (r *Repository[T]) Version() uint64 {
	return r.version
}

// Len returns the number of stored entities
func (r *Repository[T]) Len() int {
	return len(r.order)
}

// Contains reports whether id is present
func (r *Repository[T]) Contains(id int) bool {
	_, ok := r.items[id]
	return ok
}

// Add stores item, failing if its id is already present
func (r *Repository[T]) Add(item T) error {
	id := item.EntityID()
	if _, exists := r.items[id]; exists {
		return domain.NewDuplicateEntityError("repository.add", r.name, id)
	}

	r.items[id] = item
	r.order = append(r.order, id)
	r.version++
	return nil
}

// GetByID returns the entity with the given id
func (r *Repository[T]) GetByID(id int) (T, error) {
	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, domain.NewNotFoundError("repository.get", r.name, id)
	}
	return item, nil
}

// FindFirst returns the first entity in insertion order that matches pred.
// A miss is reported through the boolean, not as an error.
func (r *Repository[T]) FindFirst(pred func(T) bool) (T, bool) {
	for _, id := range r.order {
		if item := r.items[id]; pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every entity matching pred, in insertion order
func (r *Repository[T]) Filter(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range r.order {
		if item := r.items[id]; pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Remove deletes the entity with the given id
func (r *Repository[T]) Remove(id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.NewNotFoundError("repository.remove", r.name, id)
	}

	delete(r.items, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	r.version++
	return nil
}

// replace stores next under id. It fails without touching storage when id
// is absent or next reports a different identity.
func (r *Repository[T]) replace(id int, next T) error {
	if _, ok := r.items[id]; !ok {
		return domain.NewNotFoundError("repository.update", r.name, id)
	}
	if next.EntityID() != id {
		return domain.NewInvalidValueError("repository.update", r.name, id, "entity identity cannot change")
	}

	r.items[id] = next
	r.version++
	return nil
}

// GetAll returns a snapshot of all entities in insertion order. The copy is
// shallow: pointer entities are shared with the repository, and changing them
// through the snapshot does not bump Version.
func (r *Repository[T]) GetAll() []T {
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// LoadAll replaces the repository contents with items. If items contains a
// duplicate id the repository is left unchanged.
func (r *Repository[T]) LoadAll(items []T) error {
	next := make(map[int]T, len(items))
	order := make([]int, 0, len(items))
	for _, item := range items {
		id := item.EntityID()
		if _, exists := next[id]; exists {
			return domain.NewDuplicateEntityError("repository.load", r.name, id)
		}
		next[id] = item
		order = append(order, id)
	}

	r.items = next
	r.order = order
	r.version++
	return nil
}

// UpdateQuantity sets the quantity of the entity with the given id. A
// negative quantity is rejected before the id is looked up. Every check runs
// before SetQuantity, so a failed update leaves the entity untouched.
func UpdateQuantity[T Quantified](r *Repository[T], id, quantity int) error {
	if quantity < 0 {
		return domain.NewInvalidValueError("repository.update_quantity", r.name, id, "quantity cannot be negative")
	}

	item, err := r.GetByID(id)
	if err != nil {
		return err
	}

	item.SetQuantity(quantity)
	return r.replace(id, item)
}

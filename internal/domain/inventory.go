package domain

import "time"

// InventoryItem is an immutable inventory log record
type InventoryItem struct {
	ID        int       `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Quantity  int       `json:"quantity" yaml:"quantity"`
	DateAdded time.Time `json:"date_added" yaml:"date_added"`
}

// EntityID returns the item id
func (i InventoryItem) EntityID() int {
	return i.ID
}

package domain

import (
	"fmt"
	"time"
)

// StockItem is the contract shared by every warehouse item type
type StockItem interface {
	EntityID() int
	ItemName() string
	Qty() int
	SetQuantity(quantity int)
	// Details returns the type specific description line
	Details() string
}

// ElectronicItem is a warehouse electronics product
type ElectronicItem struct {
	ID             int    `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Quantity       int    `json:"quantity" yaml:"quantity"`
	Brand          string `json:"brand" yaml:"brand"`
	WarrantyMonths int    `json:"warranty_months" yaml:"warranty_months"`
}

// NewElectronicItem creates an electronics item
func NewElectronicItem(id int, name string, quantity int, brand string, warrantyMonths int) *ElectronicItem {
	return &ElectronicItem{ID: id, Name: name, Quantity: quantity, Brand: brand, WarrantyMonths: warrantyMonths}
}

func (e *ElectronicItem) EntityID() int            { return e.ID }
func (e *ElectronicItem) ItemName() string         { return e.Name }
func (e *ElectronicItem) Qty() int                 { return e.Quantity }
func (e *ElectronicItem) SetQuantity(quantity int) { e.Quantity = quantity }

func (e *ElectronicItem) Details() string {
	return fmt.Sprintf("Brand: %s, Warranty: %d months", e.Brand, e.WarrantyMonths)
}

// GroceryItem is a perishable warehouse product
type GroceryItem struct {
	ID         int       `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Quantity   int       `json:"quantity" yaml:"quantity"`
	ExpiryDate time.Time `json:"expiry_date" yaml:"expiry_date"`
}

// NewGroceryItem creates a grocery item
func NewGroceryItem(id int, name string, quantity int, expiry time.Time) *GroceryItem {
	return &GroceryItem{ID: id, Name: name, Quantity: quantity, ExpiryDate: expiry}
}

func (g *GroceryItem) EntityID() int            { return g.ID }
func (g *GroceryItem) ItemName() string         { return g.Name }
func (g *GroceryItem) Qty() int                 { return g.Quantity }
func (g *GroceryItem) SetQuantity(quantity int) { g.Quantity = quantity }

func (g *GroceryItem) Details() string {
	return fmt.Sprintf("Expiry: %s", g.ExpiryDate.Format(time.DateOnly))
}

// Expired reports whether the item is past its expiry date at the given time
func (g *GroceryItem) Expired(at time.Time) bool {
	return at.After(g.ExpiryDate)
}

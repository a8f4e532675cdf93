// Package service implements the coursework exercises on top of the
// repository layer.
//
// # Services
//
// GradeService parses a student roster and writes a graded report.
//
// InventoryLogger keeps an append-only item log and persists it through any
// repository.Snapshotter (file or SQLite).
//
// LedgerService routes transactions through a payment Processor and applies
// them to an Account.
//
// HealthService tracks patients and prescriptions and serves prescriptions
// per patient from a derived index.
//
// WarehouseManager holds one Shelf per product type and adjusts stock.
//
// # Event System
//
// Services publish mutations on an EventBus. Publishing never blocks; slow
// subscribers miss events.
package service

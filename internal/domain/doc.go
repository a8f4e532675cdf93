// Package domain defines the core entity types for the coursework exercises.
//
// Every stored record exposes a caller-assigned integer identity through
// EntityID, which is what the generic repository keys on. The package has no
// dependencies on storage or presentation code.
//
// # Entities
//
// Student carries a roster score and derives a letter Grade from it.
//
// InventoryItem is the immutable record kept by the inventory logger.
//
// Transaction and Account model the ledger. An Account is a tagged variant:
// AccountKindStandard lets the balance go negative, AccountKindSavings
// rejects withdrawals larger than the balance with InsufficientFundsError.
//
// Patient and Prescription are the health records. Prescriptions reference
// their patient through PatientID, which the health service groups on.
//
// ElectronicItem and GroceryItem are warehouse stock. Both satisfy StockItem,
// which exposes the mutable quantity.
//
// # Errors
//
// Repository validation failures are reported as *EntityError with one of
// three kinds (duplicate, not found, invalid value). They are recoverable:
// callers report them and continue. Use errors.Is with ErrDuplicateEntity,
// ErrNotFound or ErrInvalidValue, or IsKind, to classify them.
package domain

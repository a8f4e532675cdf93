package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for broad classification.
var (
	ErrDuplicateEntity = errors.New("duplicate entity")
	ErrNotFound        = errors.New("not found")
	ErrInvalidValue    = errors.New("invalid value")
)

// ErrorKind is a coarse-grained categorization for repository errors.
type ErrorKind string

const (
	KindDuplicate    ErrorKind = "duplicate"
	KindNotFound     ErrorKind = "not_found"
	KindInvalidValue ErrorKind = "invalid_value"
)

// EntityError is a domain validation failure raised while mutating or
// reading a keyed collection.
type EntityError struct {
	Op     string
	Kind   ErrorKind
	Entity string // human readable entity name, e.g. "grocery item"
	ID     int
	Msg    string // optional detail, used by invalid value errors
	Err    error
}

// NewDuplicateEntityError reports an identity that is already taken.
func NewDuplicateEntityError(op, entity string, id int) *EntityError {
	return &EntityError{Op: op, Kind: KindDuplicate, Entity: entity, ID: id}
}

// NewNotFoundError reports an identity that is not present.
func NewNotFoundError(op, entity string, id int) *EntityError {
	return &EntityError{Op: op, Kind: KindNotFound, Entity: entity, ID: id}
}

// NewInvalidValueError reports a field value that violates a domain constraint.
func NewInvalidValueError(op, entity string, id int, msg string) *EntityError {
	return &EntityError{Op: op, Kind: KindInvalidValue, Entity: entity, ID: id, Msg: msg}
}

func (e *EntityError) Error() string {
	if e == nil {
		return "<nil>"
	}

	entity := e.Entity
	if entity == "" {
		entity = "entity"
	}

	var base string
	switch e.Kind {
	case KindDuplicate:
		base = fmt.Sprintf("%s with ID %d already exists", entity, e.ID)
	case KindNotFound:
		base = fmt.Sprintf("%s with ID %d not found", entity, e.ID)
	default:
		base = e.Msg
		if base == "" {
			base = fmt.Sprintf("invalid value for %s with ID %d", entity, e.ID)
		}
	}

	if e.Op != "" {
		base = e.Op + ": " + base
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *EntityError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel that corresponds to the error kind.
func (e *EntityError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindDuplicate:
		return target == ErrDuplicateEntity
	case KindNotFound:
		return target == ErrNotFound
	case KindInvalidValue:
		return target == ErrInvalidValue
	}
	return false
}

// IsKind helps callers classify errors without depending on the repository package.
func IsKind(err error, kind ErrorKind) bool {
	var ee *EntityError
	if errors.As(err, &ee) {
		return ee.Kind == kind
	}
	return false
}

// MissingFieldError is raised for a roster line with the wrong number of
// fields or with an empty field.
type MissingFieldError struct {
	Line int
	msg  string
}

func NewMissingFieldError(line int, msg string) MissingFieldError {
	return MissingFieldError{Line: line, msg: msg}
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.msg)
}

// InvalidScoreFormatError is raised for a roster line whose id or score is
// not a valid integer, or whose score is out of range.
type InvalidScoreFormatError struct {
	Line int
	msg  string
}

func NewInvalidScoreFormatError(line int, msg string) InvalidScoreFormatError {
	return InvalidScoreFormatError{Line: line, msg: msg}
}

func (e InvalidScoreFormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.msg)
}

// InsufficientFundsError is returned when a savings account cannot cover a
// transaction. The account balance is left untouched.
type InsufficientFundsError struct {
	Account   string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account %s: requested %s, available %s",
		e.Account, e.Requested.String(), e.Available.String())
}

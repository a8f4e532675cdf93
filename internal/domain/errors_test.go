package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorMessages(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		err := NewDuplicateEntityError("repository.add", "grocery item", 1)
		assert.Equal(t, "repository.add: grocery item with ID 1 already exists", err.Error())
	})

	t.Run("not found", func(t *testing.T) {
		err := NewNotFoundError("repository.remove", "electronic item", 999)
		assert.Equal(t, "repository.remove: electronic item with ID 999 not found", err.Error())
	})

	t.Run("invalid value", func(t *testing.T) {
		err := NewInvalidValueError("repository.update_quantity", "grocery item", 1, "quantity cannot be negative")
		assert.Equal(t, "repository.update_quantity: quantity cannot be negative", err.Error())
	})

	t.Run("empty entity name", func(t *testing.T) {
		err := NewNotFoundError("", "", 3)
		assert.Equal(t, "entity with ID 3 not found", err.Error())
	})

	t.Run("nil receiver", func(t *testing.T) {
		var err *EntityError
		assert.Equal(t, "<nil>", err.Error())
	})
}

func TestEntityErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     ErrorKind
	}{
		{"duplicate", NewDuplicateEntityError("op", "item", 1), ErrDuplicateEntity, KindDuplicate},
		{"not found", NewNotFoundError("op", "item", 1), ErrNotFound, KindNotFound},
		{"invalid", NewInvalidValueError("op", "item", 1, "bad"), ErrInvalidValue, KindInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service: %w", tt.err)

			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.True(t, IsKind(wrapped, tt.kind))

			for _, other := range []error{ErrDuplicateEntity, ErrNotFound, ErrInvalidValue} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}

	t.Run("plain error has no kind", func(t *testing.T) {
		assert.False(t, IsKind(errors.New("boom"), KindNotFound))
	})

	t.Run("cause is unwrapped", func(t *testing.T) {
		root := errors.New("root")
		err := &EntityError{Op: "op", Kind: KindInvalidValue, Msg: "bad", Err: root}
		assert.ErrorIs(t, err, root)
		assert.Equal(t, "op: bad: root", err.Error())
	})
}

func TestRosterErrors(t *testing.T) {
	var missing MissingFieldError
	err := fmt.Errorf("parse: %w", NewMissingFieldError(3, "missing or extra fields"))
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, 3, missing.Line)
	assert.Equal(t, "line 3: missing or extra fields", missing.Error())

	var invalid InvalidScoreFormatError
	err = NewInvalidScoreFormatError(7, "invalid score format")
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, 7, invalid.Line)
}

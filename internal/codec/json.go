package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// JSONCodec handles JSON import/export
type JSONCodec[T any] struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec[T any]() *JSONCodec[T] {
	return &JSONCodec[T]{}
}

// Format returns the codec format identifier
func (c *JSONCodec[T]) Format() string {
	return "json"
}

// Decode reads a JSON array. An empty input decodes to an empty list.
func (c *JSONCodec[T]) Decode(r io.Reader) ([]T, error) {
	var items []T
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Encode writes items as an indented JSON array
func (c *JSONCodec[T]) Encode(items []T, w io.Writer) error {
	if items == nil {
		items = []T{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

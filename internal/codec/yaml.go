package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec[T any] struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec[T any]() *YAMLCodec[T] {
	return &YAMLCodec[T]{}
}

// Format returns the codec format identifier
func (c *YAMLCodec[T]) Format() string {
	return "yaml"
}

// Decode reads a YAML sequence. An empty document decodes to an empty list.
func (c *YAMLCodec[T]) Decode(r io.Reader) ([]T, error) {
	var items []T
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Encode writes items as a YAML sequence
func (c *YAMLCodec[T]) Encode(items []T, w io.Writer) error {
	if items == nil {
		items = []T{}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

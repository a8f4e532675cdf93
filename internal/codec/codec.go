package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec encodes and decodes a full entity list
type Codec[T any] interface {
	Decode(r io.Reader) ([]T, error)
	Encode(items []T, w io.Writer) error
	Format() string
}

// ForFormat returns the codec registered under name ("json" or "yaml")
func ForFormat[T any](name string) (Codec[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return NewJSONCodec[T](), nil
	case "yaml", "yml":
		return NewYAMLCodec[T](), nil
	default:
		return nil, fmt.Errorf("unsupported codec format %q", name)
	}
}

// ForPath picks a codec from the file extension
func ForPath[T any](path string) (Codec[T], error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("cannot infer codec format from %q", path)
	}
	return ForFormat[T](ext)
}

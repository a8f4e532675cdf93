package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/domain"
)

func sampleItems() []domain.InventoryItem {
	added := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	return []domain.InventoryItem{
		{ID: 1, Name: "Laptop", Quantity: 5, DateAdded: added},
		{ID: 2, Name: "Mouse", Quantity: 20, DateAdded: added},
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		hasErr bool
	}{
		{"json", "json", false},
		{"JSON", "json", false},
		{"yaml", "yaml", false},
		{"yml", "yaml", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ForFormat[domain.InventoryItem](tt.name)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Format())
		})
	}
}

func TestForPath(t *testing.T) {
	c, err := ForPath[domain.InventoryItem]("data/inventory.yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Format())

	_, err = ForPath[domain.InventoryItem]("data/inventory")
	assert.Error(t, err)
}

func TestCodecsPreserveOrderAndFields(t *testing.T) {
	codecs := []Codec[domain.InventoryItem]{
		NewJSONCodec[domain.InventoryItem](),
		NewYAMLCodec[domain.InventoryItem](),
	}

	for _, c := range codecs {
		t.Run(c.Format(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, c.Encode(sampleItems(), &buf))

			got, err := c.Decode(&buf)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "Laptop", got[0].Name)
			assert.Equal(t, 20, got[1].Quantity)
			assert.True(t, got[0].DateAdded.Equal(sampleItems()[0].DateAdded))
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for _, c := range []Codec[domain.InventoryItem]{
		NewJSONCodec[domain.InventoryItem](),
		NewYAMLCodec[domain.InventoryItem](),
	} {
		t.Run(c.Format(), func(t *testing.T) {
			got, err := c.Decode(strings.NewReader(""))
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestJSONEncodesNilAsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec[domain.InventoryItem]().Encode(nil, &buf))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestJSONDecodeMalformed(t *testing.T) {
	_, err := NewJSONCodec[domain.InventoryItem]().Decode(strings.NewReader("{not json"))
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestYAMLDecodeMalformed(t *testing.T) {
	_, err := NewYAMLCodec[domain.InventoryItem]().Decode(strings.NewReader("id: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse YAML")
}

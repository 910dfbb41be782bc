package tixbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapListing_FlatAndNestedShapesAgree(t *testing.T) {
	flat := map[string]any{"id": "x", "price_per_ticket": float64(10), "quantity": float64(2)}
	nested := map[string]any{"id": "x", "attributes": map[string]any{
		"price_per_ticket": float64(10),
		"quantity":         float64(2),
	}}

	a := MapListing(flat)
	b := MapListing(nested)

	// identical apart from the preserved raw record
	a.Raw, b.Raw = nil, nil
	assert.Equal(t, a, b)
}

func TestMapListing_RawPreserved(t *testing.T) {
	rec := map[string]any{"id": "x", "future_field": "kept"}
	l := MapListing(rec)
	assert.Equal(t, rec, l.Raw)
}

func TestMapListing_IDCheckedAtBothLevels(t *testing.T) {
	l := MapListing(map[string]any{"attributes": map[string]any{"id": "nested-only"}})
	assert.Equal(t, "nested-only", l.ID)

	l = MapListing(map[string]any{"id": "top", "attributes": map[string]any{"id": "nested"}})
	assert.Equal(t, "top", l.ID)
}

func TestMapListing_Fields(t *testing.T) {
	l := MapListing(map[string]any{
		"id": "P2JO5OBX",
		"attributes": map[string]any{
			"listing_hash":     "abc123",
			"price_per_ticket": float64(125.5),
			"quantity":         float64(4),
			"quantities_list":  []any{float64(2), float64(4)},
			"splits":           []any{float64(1), float64(2), "junk", float64(4)},
			"section":          "104",
			"row":              "F",
			"seat_numbers":     "1-4",
			"notes":            "aisle seats",
			"delivery_method":  "mobile",
		},
	})
	assert.Equal(t, "P2JO5OBX", l.ID)
	assert.Equal(t, "abc123", l.ListingHash)
	assert.Equal(t, 125.5, l.Price)
	assert.Equal(t, 4, l.Quantity)
	assert.Equal(t, []int{2, 4}, l.QuantitiesList)
	assert.Equal(t, []int{1, 2, 4}, l.Splits, "non-numeric elements are skipped")
	require.NotNil(t, l.Section)
	assert.Equal(t, "104", *l.Section)
	require.NotNil(t, l.Row)
	assert.Equal(t, "F", *l.Row)
	require.NotNil(t, l.DeliveryMethod)
	assert.Equal(t, "mobile", *l.DeliveryMethod)
}

func TestMapListing_Defaults(t *testing.T) {
	l := MapListing(map[string]any{"id": "x"})
	assert.Equal(t, 0.0, l.Price)
	assert.Equal(t, 0, l.Quantity)
	assert.Equal(t, []int{}, l.QuantitiesList, "sequence fields default to empty, never nil")
	assert.Equal(t, []int{}, l.Splits)
	assert.Nil(t, l.Section)
	assert.Nil(t, l.Row)
	assert.Nil(t, l.Notes)

	// non-finite and non-numeric commercial values fall back to the defaults
	l = MapListing(map[string]any{"id": "x", "price_per_ticket": "call us", "quantity": []any{}})
	assert.Equal(t, 0.0, l.Price)
	assert.Equal(t, 0, l.Quantity)

	assert.NotPanics(t, func() { MapListing(nil) })
}

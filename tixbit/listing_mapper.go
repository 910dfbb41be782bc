package tixbit

// MapListing maps one arbitrary upstream listing record to the canonical
// Listing. Upstream serves two shapes that are indistinguishable except by
// probing for a nested "attributes" object: either every commercial and
// placement field sits on the record itself, or all of them sit under
// attributes. The id is the one field checked at both levels. Total function,
// same policy as MapEvent: missing or mistyped fields default, never fail.
func MapListing(rec map[string]any) Listing {
	if rec == nil {
		rec = map[string]any{}
	}

	// Shape probe. A single presence check decides the source of all
	// attribute-level fields; per-field fallbacks are deliberately avoided.
	attrs := rec
	if nested, ok := rec["attributes"].(map[string]any); ok {
		attrs = nested
	}

	id, ok := strField(rec, "id")
	if !ok || id == "" {
		id, _ = strField(attrs, "id")
	}

	l := Listing{
		ID:             id,
		QuantitiesList: intSlice(attrs["quantities_list"]),
		Splits:         intSlice(attrs["splits"]),
		Section:        optStr(attrs, "section"),
		Row:            optStr(attrs, "row"),
		SeatNumbers:    optStr(attrs, "seat_numbers"),
		Notes:          optStr(attrs, "notes"),
		DeliveryMethod: optStr(attrs, "delivery_method"),
		Raw:            rec,
	}
	l.ListingHash, _ = strField(attrs, "listing_hash")
	if p, ok := numField(attrs, "price_per_ticket", "price"); ok {
		l.Price = p
	}
	if q, ok := numField(attrs, "quantity"); ok {
		l.Quantity = int(q)
	}
	return l
}

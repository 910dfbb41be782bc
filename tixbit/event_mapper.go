package tixbit

import (
	"fmt"
	"time"
)

// MapEvent maps one arbitrary upstream event record to the canonical Event.
// Upstream field naming is inconsistent between endpoints (snake_case,
// camelCase, legacy fallbacks), so every field probes an ordered candidate
// list and degrades to a safe default. The function is total: it never fails,
// whatever the record holds.
func MapEvent(rec map[string]any) Event {
	if rec == nil {
		rec = map[string]any{}
	}

	rawID, _ := strField(rec, "external_event_id", "externalEventId", "id")
	id := NormalizeEventID(rawID)

	name, _ := strField(rec, "name", "performer")

	slug, ok := strField(rec, "slug")
	if !ok || slug == "" {
		slug = id
	}

	ev := Event{
		ID:                id,
		ExternalEventID:   id,
		Slug:              slug,
		Name:              name,
		Date:              resolveDate(rec),
		VenueName:         optStr(rec, "venue_name", "venueName"),
		VenueCity:         optStr(rec, "venue_city", "venueCity"),
		VenueState:        optStr(rec, "venue_state", "venueState"),
		ImageURL:          optStr(rec, "image_url", "imageUrl"),
		CategoryName:      optStr(rec, "category_name", "categoryName"),
		CategoryEventType: optStr(rec, "category_event_type", "categoryEventType"),
		Inventory:         resolveInventory(rec),
	}

	for _, k := range []string{"has_listings", "hasListings"} {
		if b, ok := asBool(rec[k]); ok {
			ev.HasListings = b
			break
		}
	}

	return ev
}

// resolveDate handles the four date encodings seen across upstream response
// generators, in priority order: plain string, epoch millis, a structured
// {month, day, year} object, and an epoch under the legacy date_ms key. The
// heterogeneity is real; do not assume a single format.
func resolveDate(rec map[string]any) string {
	if s, ok := rec["date"].(string); ok && s != "" {
		return s
	}
	if ms, ok := asNumber(rec["date"]); ok {
		return epochToISO(ms)
	}
	if obj, ok := rec["date"].(map[string]any); ok {
		month, _ := strField(obj, "month")
		day, _ := strField(obj, "day")
		year, _ := strField(obj, "year")
		if month != "" && day != "" && year != "" {
			return fmt.Sprintf("%s %s, %s", month, day, year)
		}
	}
	if ms, ok := asNumber(rec["date_ms"]); ok {
		return epochToISO(ms)
	}
	return ""
}

func epochToISO(ms float64) string {
	return time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339)
}

func resolveInventory(rec map[string]any) Inventory {
	inv, ok := rec["inventory"].(map[string]any)
	if !ok {
		return Inventory{}
	}
	out := Inventory{}
	if n, ok := numField(inv, "total_available", "totalAvailable"); ok && n > 0 {
		out.TotalAvailable = int(n)
	}
	if n, ok := numField(inv, "min_price", "minPrice"); ok && n > 0 {
		out.MinPrice = n
	}
	if n, ok := numField(inv, "max_price", "maxPrice"); ok && n > 0 {
		out.MaxPrice = n
	}
	return out
}

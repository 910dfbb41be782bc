package tixbit

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// SeatmapParams identifies the event whose seating chart to fetch. EventID
// accepts either the canonical or the provider-prefixed form.
type SeatmapParams struct {
	EventID string
}

// Seatmap fetches the seating chart for one event. The primary request
// returns the chart metadata; when it declares coordinates available, a
// secondary request fetches the geometry document. Failure of that secondary
// fetch is deliberately absorbed: the chart still comes back, with empty
// zones, so callers can always render something.
func (c *Client) Seatmap(ctx context.Context, p SeatmapParams) (*SeatmapResult, error) {
	id := NormalizeEventID(p.EventID)
	if id == "" {
		return nil, errors.New("tixbit: event id is required")
	}

	var raw map[string]any
	if err := c.getJSON(ctx, "/api/events/"+url.PathEscape(id)+"/seating-chart", nil, &raw); err != nil {
		return nil, err
	}

	res := &SeatmapResult{
		Zones:        []SeatmapZone{},
		SectionNames: []string{},
	}
	res.VenueName, _ = strField(raw, "venue_name", "venueName")
	res.ConfigurationID, _ = strField(raw, "configuration_id", "configurationId")
	res.ConfigurationName, _ = strField(raw, "configuration_name", "configurationName")
	if v, ok := raw["venue"].(map[string]any); ok {
		res.Venue.Name, _ = strField(v, "name")
		res.Venue.Address, _ = strField(v, "address")
		res.Venue.City, _ = strField(v, "city")
		res.Venue.State, _ = strField(v, "state")
		res.Venue.Zip, _ = strField(v, "zip")
	}
	if n, ok := numField(raw, "capacity"); ok && n >= 0 {
		capacity := int(n)
		res.Capacity = &capacity
	}
	if bg, ok := strField(raw, "background_image", "backgroundImage"); ok {
		res.BackgroundImage = c.absoluteURL(bg)
	}
	if cu, ok := strField(raw, "coordinates_url", "coordinatesUrl"); ok {
		res.CoordinatesURL = c.absoluteURL(cu)
	}
	for _, k := range []string{"has_coordinates", "hasCoordinates"} {
		if b, ok := asBool(raw[k]); ok {
			res.HasCoordinates = b
			break
		}
	}

	if res.HasCoordinates && res.CoordinatesURL != "" {
		res.Zones = c.fetchCoordinates(ctx, res.CoordinatesURL)
		for _, z := range res.Zones {
			for _, s := range z.Sections {
				res.SectionNames = append(res.SectionNames, s.Name)
			}
		}
	}
	return res, nil
}

// fetchCoordinates pulls and parses the geometry document. Any failure,
// transport or status, degrades to an empty zone list; the primary seatmap
// call must not fail because geometry was unavailable.
func (c *Client) fetchCoordinates(ctx context.Context, u string) []SeatmapZone {
	body, err := c.get(ctx, u)
	if err != nil {
		if c.log != nil {
			c.log.Debug("coordinates fetch failed", zap.String("url", u), zap.Error(err))
		}
		return []SeatmapZone{}
	}
	return parseCoordinates(body)
}

func parseCoordinates(body []byte) []SeatmapZone {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return []SeatmapZone{}
	}
	rawZones, ok := doc["zones"].([]any)
	if !ok {
		return []SeatmapZone{}
	}
	zones := make([]SeatmapZone, 0, len(rawZones))
	for _, rz := range rawZones {
		zm, ok := rz.(map[string]any)
		if !ok {
			continue
		}
		zone := SeatmapZone{Sections: []SeatmapSection{}}
		zone.ID, _ = strField(zm, "id")
		zone.Name, _ = strField(zm, "name")
		if rawSections, ok := zm["sections"].([]any); ok {
			for _, rs := range rawSections {
				sm, ok := rs.(map[string]any)
				if !ok {
					continue
				}
				zone.Sections = append(zone.Sections, parseSection(sm))
			}
		}
		zones = append(zones, zone)
	}
	return zones
}

func parseSection(sm map[string]any) SeatmapSection {
	sec := SeatmapSection{Labels: []SeatmapLabel{}}
	sec.ID, _ = strField(sm, "id")
	sec.Name, _ = strField(sm, "name")

	if rawLabels, ok := sm["labels"].([]any); ok {
		for _, rl := range rawLabels {
			lm, ok := rl.(map[string]any)
			if !ok {
				continue
			}
			text, ok := strField(lm, "text")
			if !ok || text == "" {
				continue
			}
			label := SeatmapLabel{Text: text}
			label.X, _ = numField(lm, "x")
			label.Y, _ = numField(lm, "y")
			label.Size, _ = numField(lm, "size")
			label.Angle, _ = numField(lm, "angle")
			sec.Labels = append(sec.Labels, label)
		}
	}

	// A section may carry several overlapping labels, e.g. a decorative one
	// plus the canonical one. The representative position is the label whose
	// text matches the section name, else the first in document order.
	if len(sec.Labels) > 0 {
		rep := sec.Labels[0]
		for _, l := range sec.Labels {
			if strings.EqualFold(l.Text, sec.Name) {
				rep = l
				break
			}
		}
		sec.X, sec.Y = rep.X, rep.Y
	}

	if shape, ok := sm["shape"].(map[string]any); ok {
		if path, ok := shape["path"].(string); ok {
			sec.ShapePath = &path
		}
	}
	return sec
}

package tixbit

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coordsDoc = `{
  "zones": [
    {"id": "z1", "name": "Section", "sections": [
      {"id": "s101", "name": "101",
       "labels": [{"text": "PREMIUM", "x": 5, "y": 6}, {"text": "101", "x": 10, "y": 20}],
       "shape": {"path": "M0 0 L10 0 L10 10 Z"}},
      {"id": "s102", "name": "102",
       "labels": [{"text": "NOPE", "x": 7, "y": 8}]},
      {"id": "s103", "name": "103", "labels": []}
    ]},
    {"id": "z2", "name": "Floor", "sections": [
      {"id": "f1", "name": "FLOOR1", "labels": [{"text": "floor1", "x": 50, "y": 60}]}
    ]}
  ]
}`

func seatmapServer(t *testing.T, coordsStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/events/36PB9ZN/seating-chart", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"venue_name": "Arena One",
			"venue": {"name": "Arena One", "city": "Austin", "state": "TX"},
			"configuration_id": "cfg-9",
			"configuration_name": "End Stage",
			"capacity": 18500,
			"background_image": "/api/seatmap/assets?url=bg",
			"coordinates_url": "/api/seatmap/coords?cfg=9",
			"has_coordinates": true
		}`)
	})
	mux.HandleFunc("/api/seatmap/coords", func(w http.ResponseWriter, r *http.Request) {
		if coordsStatus != http.StatusOK {
			w.WriteHeader(coordsStatus)
			return
		}
		fmt.Fprint(w, coordsDoc)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSeatmap_ResolvesURLsAndParsesCoordinates(t *testing.T) {
	srv := seatmapServer(t, http.StatusOK)
	c := New(WithBaseURL(srv.URL))

	res, err := c.Seatmap(t.Context(), SeatmapParams{EventID: "provider-36PB9ZN"})
	require.NoError(t, err)

	assert.Equal(t, "Arena One", res.VenueName)
	assert.Equal(t, "Austin", res.Venue.City)
	assert.Equal(t, "cfg-9", res.ConfigurationID)
	require.NotNil(t, res.Capacity)
	assert.Equal(t, 18500, *res.Capacity)
	assert.Equal(t, srv.URL+"/api/seatmap/assets?url=bg", res.BackgroundImage)
	assert.Equal(t, srv.URL+"/api/seatmap/coords?cfg=9", res.CoordinatesURL)
	assert.True(t, res.HasCoordinates)

	require.Len(t, res.Zones, 2)
	assert.Equal(t, "Section", res.Zones[0].Name)
	assert.Equal(t, []string{"101", "102", "103", "FLOOR1"}, res.SectionNames)

	s101 := res.Zones[0].Sections[0]
	assert.Equal(t, 10.0, s101.X, "representative label is the one matching the section name")
	assert.Equal(t, 20.0, s101.Y)
	assert.Len(t, s101.Labels, 2)
	require.NotNil(t, s101.ShapePath)
	assert.Equal(t, "M0 0 L10 0 L10 10 Z", *s101.ShapePath)

	s102 := res.Zones[0].Sections[1]
	assert.Equal(t, 7.0, s102.X, "no name match falls back to the first label")
	assert.Nil(t, s102.ShapePath)

	s103 := res.Zones[0].Sections[2]
	assert.Equal(t, 0.0, s103.X, "no labels defaults the position to the origin")
	assert.Equal(t, 0.0, s103.Y)

	f1 := res.Zones[1].Sections[0]
	assert.Equal(t, 50.0, f1.X, "label matching is case-insensitive")
}

func TestSeatmap_AbsoluteUpstreamURLsPassThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/events/EV9999Z/seating-chart", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"venue_name": "Open Field",
			"background_image": "https://cdn.example/bg.png",
			"has_coordinates": false
		}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	res, err := New(WithBaseURL(srv.URL)).Seatmap(t.Context(), SeatmapParams{EventID: "EV9999Z"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/bg.png", res.BackgroundImage)
	assert.False(t, res.HasCoordinates)
	assert.Empty(t, res.Zones, "no secondary fetch when coordinates are not declared")
	assert.Empty(t, res.SectionNames)
}

func TestSeatmap_CoordinateFetchFailureDegrades(t *testing.T) {
	srv := seatmapServer(t, http.StatusInternalServerError)

	res, err := New(WithBaseURL(srv.URL)).Seatmap(t.Context(), SeatmapParams{EventID: "36PB9ZN"})
	require.NoError(t, err, "coordinate failures must not fail the primary call")
	assert.Empty(t, res.Zones)
	assert.Empty(t, res.SectionNames)
	assert.True(t, res.HasCoordinates, "the primary response's flag is reported unchanged")
}

func TestParseCoordinates_Malformed(t *testing.T) {
	assert.Empty(t, parseCoordinates([]byte(`not json`)))
	assert.Empty(t, parseCoordinates([]byte(`{}`)))
	assert.Empty(t, parseCoordinates([]byte(`{"zones": "wrong shape"}`)))

	zones := parseCoordinates([]byte(`{"zones": [{"id": "z", "name": "Z"}, "junk"]}`))
	require.Len(t, zones, 1, "non-object zones are skipped")
	assert.Empty(t, zones[0].Sections)
}

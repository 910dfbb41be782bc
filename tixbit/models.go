package tixbit

// Event is the canonical shape for one ticketed occurrence, regardless of which
// upstream endpoint (and which generation of field names) produced it.
type Event struct {
    ID                string    `json:"id"`
    ExternalEventID   string    `json:"external_event_id"` // always equals ID
    Slug              string    `json:"slug"`
    Name              string    `json:"name"`
    Date              string    `json:"date"` // format varies by upstream encoding, see MapEvent
    VenueName         *string   `json:"venue_name"`
    VenueCity         *string   `json:"venue_city"`
    VenueState        *string   `json:"venue_state"`
    ImageURL          *string   `json:"image_url"`
    CategoryName      *string   `json:"category_name"`
    CategoryEventType *string   `json:"category_event_type"`
    HasListings       bool      `json:"has_listings"`
    Inventory         Inventory `json:"inventory"`
}

// Inventory summarizes sellable stock for an event. Prices are in dollars.
type Inventory struct {
    TotalAvailable int     `json:"total_available"`
    MinPrice       float64 `json:"min_price"`
    MaxPrice       float64 `json:"max_price"`
}

// Listing is one sellable ticket offer. Prices are fee-inclusive per-ticket
// dollars. Raw preserves the original upstream record for fields not yet modeled.
type Listing struct {
    ID             string         `json:"id"`
    ListingHash    string         `json:"listing_hash"`
    Price          float64        `json:"price"`
    Quantity       int            `json:"quantity"`
    QuantitiesList []int          `json:"quantities_list"`
    Splits         []int          `json:"splits"`
    Section        *string        `json:"section"`
    Row            *string        `json:"row"`
    SeatNumbers    *string        `json:"seat_numbers"`
    Notes          *string        `json:"notes"`
    DeliveryMethod *string        `json:"delivery_method"`
    Raw            map[string]any `json:"raw"`
}

// VenueAddress is the structured venue locale block on seatmap responses.
type VenueAddress struct {
    Name    string `json:"name"`
    Address string `json:"address"`
    City    string `json:"city"`
    State   string `json:"state"`
    Zip     string `json:"zip"`
}

// SeatmapResult is the seating chart for one event's venue configuration.
type SeatmapResult struct {
    VenueName         string        `json:"venue_name"`
    Venue             VenueAddress  `json:"venue"`
    ConfigurationID   string        `json:"configuration_id"`
    ConfigurationName string        `json:"configuration_name"`
    Capacity          *int          `json:"capacity"`
    BackgroundImage   string        `json:"background_image"`
    CoordinatesURL    string        `json:"coordinates_url"`
    HasCoordinates    bool          `json:"has_coordinates"`
    Zones             []SeatmapZone `json:"zones"`
    SectionNames      []string      `json:"section_names"`
}

// SeatmapZone is a named grouping of sections on the venue map.
type SeatmapZone struct {
    ID       string           `json:"id"`
    Name     string           `json:"name"`
    Sections []SeatmapSection `json:"sections"`
}

// SeatmapSection is one section polygon/label on the venue map. X and Y are the
// representative label coordinates in the upstream map's coordinate space.
type SeatmapSection struct {
    ID        string         `json:"id"`
    Name      string         `json:"name"`
    X         float64        `json:"x"`
    Y         float64        `json:"y"`
    Labels    []SeatmapLabel `json:"labels"`
    ShapePath *string        `json:"shape_path"`
}

// SeatmapLabel is one text annotation at a coordinate on the venue map.
type SeatmapLabel struct {
    Text  string  `json:"text"`
    X     float64 `json:"x"`
    Y     float64 `json:"y"`
    Size  float64 `json:"size,omitempty"`
    Angle float64 `json:"angle,omitempty"`
}

// Pagination echoes the upstream search pagination envelope.
type Pagination struct {
    Page       int  `json:"page"`
    Size       int  `json:"size"`
    Total      int  `json:"total"`
    TotalPages int  `json:"totalPages"`
    HasNext    bool `json:"hasNext"`
    HasPrev    bool `json:"hasPrev"`
}

// SearchResult is the response of SearchEvents.
type SearchResult struct {
    Events     []Event    `json:"events"`
    Pagination Pagination `json:"pagination"`
}

// BrowseResult is the response of Browse.
type BrowseResult struct {
    Events []Event `json:"events"`
    Total  int     `json:"total"`
}

// ListingsMeta echoes the upstream listings meta envelope.
type ListingsMeta struct {
    Total       int    `json:"total"`
    Page        int    `json:"page"`
    Size        int    `json:"size"`
    CacheSource string `json:"cacheSource,omitempty"`
}

// ListingsResult is the response of Listings.
type ListingsResult struct {
    Listings []Listing    `json:"listings"`
    Meta     ListingsMeta `json:"meta"`
}

// CheckoutLink is a constructed checkout URL for a listing. No network call is
// involved in building one.
type CheckoutLink struct {
    URL       string `json:"url"`
    ListingID string `json:"listingId"`
    Quantity  int    `json:"quantity"`
}

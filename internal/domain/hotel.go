package domain

// Hotel is the canonical entity every supplier record is mapped into.
// The JSON field names are the canonical attribute names; they are what
// the API and the CLI serialize.
type Hotel struct {
	ID                string    `json:"id"`
	DestinationID     int64     `json:"destination_id"`
	Name              string    `json:"name"`
	Location          Location  `json:"location"`
	Description       string    `json:"description"`
	Amenities         Amenities `json:"amenities"`
	Images            Images    `json:"images"`
	BookingConditions []string  `json:"booking_conditions"`
}

// Location fields are all optional; no supplier provides the full set.
type Location struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address *string  `json:"address"`
	City    *string  `json:"city"`
	Country *string  `json:"country"`
}

// Empty reports whether no location field is set at all.
func (l Location) Empty() bool {
	return l.Lat == nil && l.Lng == nil && l.Address == nil && l.City == nil && l.Country == nil
}

// Amenities are sets of lower-cased strings; duplicates collapse.
type Amenities struct {
	General []string `json:"general"`
	Room    []string `json:"room"`
}

type Image struct {
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Images groups the three galleries. Rooms and Site behave as sets keyed by
// (link, description); Amenities accumulates whatever the suppliers send.
type Images struct {
	Rooms     []Image `json:"rooms"`
	Site      []Image `json:"site"`
	Amenities []Image `json:"amenities"`
}

// SupplierRecord tags a parsed hotel with the supplier that produced it.
// The tag exists only between parse and merge; a merged Hotel never
// carries provenance.
type SupplierRecord struct {
	Source string
	Hotel  Hotel
}

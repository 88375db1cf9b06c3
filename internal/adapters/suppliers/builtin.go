package suppliers

// The three production suppliers. Each entry is pure mapping data; the
// endpoint is derived from the configured base URL plus the spec name.

// Acme flattens location fields to the top level and splits the street
// address from the postal code; the two are re-joined here.
var Acme = Spec{
	Name:            "acme",
	IDPath:          "Id",
	DestinationPath: "DestinationId",
	NamePath:        "Name",
	DescriptionPath: "Description",
	LatPath:         "Latitude",
	LngPath:         "Longitude",
	AddressParts:    []string{"Address", "PostalCode"},
	CityPath:        "City",
	CountryPath:     "Country",
	GeneralPath:     "Facilities",
}

// Patagonia nests galleries under images with url/description keys and
// sends room-level amenities only.
var Patagonia = Spec{
	Name:            "patagonia",
	IDPath:          "id",
	DestinationPath: "destination",
	NamePath:        "name",
	DescriptionPath: "info",
	LatPath:         "lat",
	LngPath:         "lng",
	AddressPath:     "address",
	RoomPath:        "amenities",
	RoomImages:      &gallerySpec{path: "images.rooms", linkKey: "url", captionKey: "description"},
	AmenityImages:   &gallerySpec{path: "images.amenities", linkKey: "url", captionKey: "description"},
}

// Paperflies is the richest feed and the authority for country data.
// Galleries use link/caption keys.
var Paperflies = Spec{
	Name:            "paperflies",
	Authoritative:   true,
	IDPath:          "hotel_id",
	DestinationPath: "destination_id",
	NamePath:        "hotel_name",
	DescriptionPath: "details",
	AddressPath:     "location.address",
	CountryPath:     "location.country",
	GeneralPath:     "amenities.general",
	RoomPath:        "amenities.room",
	RoomImages:      &gallerySpec{path: "images.rooms", linkKey: "link", captionKey: "caption"},
	SiteImages:      &gallerySpec{path: "images.site", linkKey: "link", captionKey: "caption"},
	BookingPath:     "booking_conditions",
}

// Builtin returns the specs in canonical fetch order. The order is part of
// the contract: the merge engine consumes records supplier by supplier in
// this sequence, which keeps reconciliation deterministic.
func Builtin() []Spec {
	return []Spec{Acme, Patagonia, Paperflies}
}

// AuthoritativeName returns the supplier designated as country authority
// among the given specs, or "" when none is.
func AuthoritativeName(specs []Spec) string {
	for _, s := range specs {
		if s.Authoritative {
			return s.Name
		}
	}
	return ""
}

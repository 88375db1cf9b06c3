package app

import (
	"strings"

	"hotelmerge/internal/domain"
)

// Catalog is a merged hotel collection keyed by id. It remembers first-seen
// order so query output is deterministic. The accumulator lives inside one
// MergeAll call; nothing package-level holds merge state.
type Catalog struct {
	byID  map[string]*domain.Hotel
	order []string
}

func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*domain.Hotel)}
}

func (c *Catalog) Len() int { return len(c.order) }

func (c *Catalog) Get(id string) (domain.Hotel, bool) {
	h, ok := c.byID[id]
	if !ok {
		return domain.Hotel{}, false
	}
	return *h, true
}

// Hotels returns the merged hotels in encounter order.
func (c *Catalog) Hotels() []domain.Hotel {
	out := make([]domain.Hotel, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

// MergeAll folds source-tagged records into one hotel per id. Records are
// consumed in input order: the first record seen for an id is adopted as
// the base, later ones reconcile into it. authoritative names the supplier
// whose country always wins (see Reconcile).
func MergeAll(recs []domain.SupplierRecord, authoritative string) *Catalog {
	c := NewCatalog()
	for _, rec := range recs {
		base, ok := c.byID[rec.Hotel.ID]
		if !ok {
			h := rec.Hotel
			c.byID[h.ID] = &h
			c.order = append(c.order, h.ID)
			continue
		}
		Reconcile(base, rec, authoritative)
	}
	return c
}

// Reconcile folds an incoming record into base, field by field:
//
//	location.lat/lng/address/city  fill-in (present base value never regresses)
//	location.country               fill-in, but the authoritative supplier overrides
//	location (whole)               adopted wholesale when base has none
//	description                    fill-in
//	amenities.general/room         set union, case-insensitive
//	images.rooms/site              union keyed by (link, description), first caption wins
//	images.amenities               concatenation, duplicates kept
//	booking_conditions             set union
//
// Apart from the country override, the outcome does not depend on which
// record arrived first.
func Reconcile(base *domain.Hotel, rec domain.SupplierRecord, authoritative string) {
	inc := rec.Hotel

	if base.Location.Empty() {
		base.Location = inc.Location
	} else {
		base.Location.Lat = fillFloat(base.Location.Lat, inc.Location.Lat)
		base.Location.Lng = fillFloat(base.Location.Lng, inc.Location.Lng)
		base.Location.Address = fillStr(base.Location.Address, inc.Location.Address)
		base.Location.City = fillStr(base.Location.City, inc.Location.City)
		base.Location.Country = fillStr(base.Location.Country, inc.Location.Country)
	}
	if rec.Source == authoritative && inc.Location.Country != nil {
		base.Location.Country = inc.Location.Country
	}

	if base.Description == "" {
		base.Description = inc.Description
	}

	base.Amenities.General = unionStrings(base.Amenities.General, inc.Amenities.General)
	base.Amenities.Room = unionStrings(base.Amenities.Room, inc.Amenities.Room)

	base.Images.Rooms = unionImages(base.Images.Rooms, inc.Images.Rooms)
	base.Images.Site = unionImages(base.Images.Site, inc.Images.Site)
	base.Images.Amenities = append(base.Images.Amenities, inc.Images.Amenities...)

	base.BookingConditions = unionStrings(base.BookingConditions, inc.BookingConditions)
}

func fillFloat(base, inc *float64) *float64 {
	if base != nil {
		return base
	}
	return inc
}

func fillStr(base, inc *string) *string {
	if base != nil {
		return base
	}
	return inc
}

// unionStrings dedupes case-insensitively, keeping first occurrence and
// first-seen order. Amenity inputs are already lower-cased by the adapters;
// booking conditions keep their original casing.
func unionStrings(base, inc []string) []string {
	seen := make(map[string]struct{}, len(base)+len(inc))
	out := make([]string, 0, len(base)+len(inc))
	for _, lst := range [][]string{base, inc} {
		for _, s := range lst {
			k := strings.ToLower(s)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// unionImages dedupes by the (link, description) pair; on a key collision
// the first occurrence, and so its description, wins.
func unionImages(base, inc []domain.Image) []domain.Image {
	seen := make(map[domain.Image]struct{}, len(base)+len(inc))
	out := make([]domain.Image, 0, len(base)+len(inc))
	for _, lst := range [][]domain.Image{base, inc} {
		for _, img := range lst {
			if _, ok := seen[img]; ok {
				continue
			}
			seen[img] = struct{}{}
			out = append(out, img)
		}
	}
	return out
}

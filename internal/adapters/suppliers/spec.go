package suppliers

import (
	"strings"

	"hotelmerge/internal/domain"
)

// gallerySpec names the raw list holding one image gallery and the keys its
// elements use for the link and the caption (suppliers disagree: one sends
// url/description, another link/caption).
type gallerySpec struct {
	path       string
	linkKey    string
	captionKey string
}

// Spec is one supplier's complete raw-to-canonical field mapping, held as
// data. Paths are dot paths into the raw record. Adding a supplier means
// adding a Spec and an endpoint; the merge engine never changes.
//
// Empty paths mean the supplier does not carry that field; Parse then
// leaves the canonical field at its zero value.
type Spec struct {
	Name          string
	Authoritative bool // this supplier's country wins on merge

	IDPath          string
	DestinationPath string
	NamePath        string
	DescriptionPath string

	LatPath string
	LngPath string
	// AddressParts, when set, are trimmed and comma-joined in order.
	// Otherwise AddressPath is read as a single field.
	AddressParts []string
	AddressPath  string
	CityPath     string
	CountryPath  string

	// Amenity lists; values are trimmed and lower-cased at parse time.
	GeneralPath string
	RoomPath    string

	RoomImages    *gallerySpec
	SiteImages    *gallerySpec
	AmenityImages *gallerySpec

	BookingPath string
}

// Parse maps one raw record into a source-tagged canonical hotel.
// Required fields (id, destination_id, name) raise MalformedRecordError;
// optional absence yields empty/default values; present-but-misshapen
// collections raise TypeMismatchError.
func (s Spec) Parse(raw map[string]any) (domain.SupplierRecord, error) {
	var rec domain.SupplierRecord

	id := strings.TrimSpace(lookupStr(raw, s.IDPath))
	if id == "" {
		return rec, &domain.MalformedRecordError{Supplier: s.Name, Field: s.IDPath}
	}
	dest := lookupInt64(raw, s.DestinationPath)
	if dest == nil {
		return rec, &domain.MalformedRecordError{Supplier: s.Name, Field: s.DestinationPath}
	}
	name := strings.TrimSpace(lookupStr(raw, s.NamePath))
	if name == "" {
		return rec, &domain.MalformedRecordError{Supplier: s.Name, Field: s.NamePath}
	}

	h := domain.Hotel{
		ID:            id,
		DestinationID: *dest,
		Name:          name,
		Description:   strings.TrimSpace(lookupStr(raw, s.DescriptionPath)),
		Location: domain.Location{
			Lat:     lookupFloat(raw, s.LatPath),
			Lng:     lookupFloat(raw, s.LngPath),
			Address: s.address(raw),
			City:    lookupStrPtr(raw, s.CityPath),
			Country: lookupStrPtr(raw, s.CountryPath),
		},
	}

	var err error
	if h.Amenities.General, err = s.amenityList(raw, s.GeneralPath); err != nil {
		return rec, err
	}
	if h.Amenities.Room, err = s.amenityList(raw, s.RoomPath); err != nil {
		return rec, err
	}
	if h.Images.Rooms, err = s.gallery(raw, s.RoomImages); err != nil {
		return rec, err
	}
	if h.Images.Site, err = s.gallery(raw, s.SiteImages); err != nil {
		return rec, err
	}
	if h.Images.Amenities, err = s.gallery(raw, s.AmenityImages); err != nil {
		return rec, err
	}
	if h.BookingConditions, err = s.stringList(raw, s.BookingPath); err != nil {
		return rec, err
	}

	return domain.SupplierRecord{Source: s.Name, Hotel: h}, nil
}

func (s Spec) address(raw map[string]any) *string {
	if len(s.AddressParts) > 0 {
		parts := make([]string, 0, len(s.AddressParts))
		for _, p := range s.AddressParts {
			parts = append(parts, lookupStr(raw, p))
		}
		if joined := joinNonEmpty(parts...); joined != "" {
			return &joined
		}
		return nil
	}
	return lookupStrPtr(raw, s.AddressPath)
}

// stringList reads a list of strings at path. Absent or null lists are
// empty, never an error; a non-list shape is a TypeMismatchError.
func (s Spec) stringList(raw map[string]any, path string) ([]string, error) {
	if path == "" {
		return []string{}, nil
	}
	v := lookupAny(raw, path)
	if v == nil {
		return []string{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &domain.TypeMismatchError{Supplier: s.Name, Field: path, Want: "list"}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		str, ok := it.(string)
		if !ok {
			return nil, &domain.TypeMismatchError{Supplier: s.Name, Field: path, Want: "list of strings"}
		}
		if t := strings.TrimSpace(str); t != "" {
			out = append(out, t)
		}
	}
	return dedupeFold(out), nil
}

// amenityList is stringList plus the lower-casing the canonical amenity
// sets require.
func (s Spec) amenityList(raw map[string]any, path string) ([]string, error) {
	items, err := s.stringList(raw, path)
	if err != nil {
		return nil, err
	}
	for i, it := range items {
		items[i] = strings.ToLower(it)
	}
	return items, nil
}

// gallery reshapes a raw image list into the canonical Image form using the
// supplier's own link/caption key names.
func (s Spec) gallery(raw map[string]any, g *gallerySpec) ([]domain.Image, error) {
	if g == nil {
		return []domain.Image{}, nil
	}
	v := lookupAny(raw, g.path)
	if v == nil {
		return []domain.Image{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &domain.TypeMismatchError{Supplier: s.Name, Field: g.path, Want: "list"}
	}
	out := make([]domain.Image, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			return nil, &domain.TypeMismatchError{Supplier: s.Name, Field: g.path, Want: "list of objects"}
		}
		link, _ := obj[g.linkKey].(string)
		if strings.TrimSpace(link) == "" {
			continue
		}
		caption, _ := obj[g.captionKey].(string)
		out = append(out, domain.Image{Link: link, Description: caption})
	}
	return out, nil
}

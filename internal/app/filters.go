package app

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterNone is the CLI/HTTP sentinel for "no filter on this dimension".
const FilterNone = "none"

// ParseHotelIDs parses a comma-separated hotel id list. Empty input or the
// sentinel means no filter (nil). Blank tokens are skipped.
func ParseHotelIDs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FilterNone) {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseDestinationIDs parses a comma-separated destination id list. Empty
// input or the sentinel means no filter (nil); a non-integer token is an
// error.
func ParseDestinationIDs(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FilterNone) {
		return nil, nil
	}
	var out []int64
	for _, tok := range strings.Split(s, ",") {
		t := strings.TrimSpace(tok)
		if t == "" {
			continue
		}
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("destination id %q is not an integer", t)
		}
		out = append(out, n)
	}
	return out, nil
}

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelmerge/internal/domain"
)

// CatalogSource is what the query layer needs from the catalog side.
type CatalogSource interface {
	Snapshot() (*Catalog, int64)
}

// QueryService answers filtered hotel queries over the merged snapshot,
// with an optional response cache in front.
type QueryService struct {
	source   CatalogSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(src CatalogSource, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{source: src, cache: cache, cacheTTL: ttl}
}

// Find returns hotels matching the filters, in catalog encounter order.
// A nil filter means "no filter on that dimension"; when both are present
// a hotel must satisfy both. Find never fails on filter content: absent
// matches just mean an empty result.
func (s *QueryService) Find(ctx context.Context, hotelIDs []string, destinationIDs []int64) ([]domain.Hotel, error) {
	cat, ver := s.source.Snapshot()
	if cat == nil {
		return []domain.Hotel{}, nil
	}

	key := findCacheKey(ver, hotelIDs, destinationIDs)
	if s.cache != nil {
		var cached []domain.Hotel
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	out := filterHotels(cat.Hotels(), hotelIDs, destinationIDs)

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func filterHotels(hotels []domain.Hotel, hotelIDs []string, destinationIDs []int64) []domain.Hotel {
	var idSet map[string]struct{}
	if hotelIDs != nil {
		idSet = make(map[string]struct{}, len(hotelIDs))
		for _, id := range hotelIDs {
			idSet[id] = struct{}{}
		}
	}
	var destSet map[int64]struct{}
	if destinationIDs != nil {
		destSet = make(map[int64]struct{}, len(destinationIDs))
		for _, d := range destinationIDs {
			destSet[d] = struct{}{}
		}
	}

	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if idSet != nil {
			if _, ok := idSet[h.ID]; !ok {
				continue
			}
		}
		if destSet != nil {
			if _, ok := destSet[h.DestinationID]; !ok {
				continue
			}
		}
		out = append(out, h)
	}
	return out
}

func findCacheKey(version int64, hotelIDs []string, destinationIDs []int64) string {
	ids := "*"
	if hotelIDs != nil {
		ids = strings.Join(hotelIDs, ",")
	}
	dests := "*"
	if destinationIDs != nil {
		parts := make([]string, 0, len(destinationIDs))
		for _, d := range destinationIDs {
			parts = append(parts, fmt.Sprintf("%d", d))
		}
		dests = strings.Join(parts, ",")
	}
	return fmt.Sprintf("hotels:%d:h=%s:d=%s", version, ids, dests)
}

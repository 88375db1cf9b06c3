package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotelmerge/internal/adapters/observability"
	"hotelmerge/internal/adapters/suppliers"
	"hotelmerge/internal/domain"
)

// Endpoint binds a supplier spec to the URL its records are fetched from.
type Endpoint struct {
	Spec suppliers.Spec
	URL  string
}

// CatalogService owns the fetch → parse → merge pipeline and the resulting
// in-memory snapshot. Fetches run concurrently, but results land in
// per-supplier slots and are merged in configured endpoint order, so the
// country-override rule behaves the same on every refresh.
type CatalogService struct {
	client    domain.SupplierClient
	endpoints []Endpoint
	workers   int

	mu      sync.RWMutex
	catalog *Catalog
	version int64
}

func NewCatalogService(client domain.SupplierClient, eps []Endpoint, workers int) *CatalogService {
	if workers <= 0 {
		workers = len(eps)
	}
	return &CatalogService{client: client, endpoints: eps, workers: workers}
}

// Refresh re-fetches every supplier and swaps in a freshly merged snapshot.
// Malformed or misshapen records are dropped with a warning; a failed fetch
// aborts the refresh and keeps the previous snapshot.
func (s *CatalogService) Refresh(ctx context.Context) error {
	batches := make([][]domain.SupplierRecord, len(s.endpoints))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, ep := range s.endpoints {
		g.Go(func() error {
			raws, err := s.client.FetchRecords(ctx, ep.URL)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", ep.Spec.Name, err)
			}
			recs := make([]domain.SupplierRecord, 0, len(raws))
			for _, raw := range raws {
				rec, perr := ep.Spec.Parse(raw)
				if perr != nil {
					log.Warn().Str("supplier", ep.Spec.Name).Err(perr).Msg("record dropped")
					observability.ObserveRecord(ep.Spec.Name, "dropped")
					continue
				}
				observability.ObserveRecord(ep.Spec.Name, "parsed")
				recs = append(recs, rec)
			}
			batches[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var all []domain.SupplierRecord
	for _, b := range batches {
		all = append(all, b...)
	}

	specs := make([]suppliers.Spec, 0, len(s.endpoints))
	for _, ep := range s.endpoints {
		specs = append(specs, ep.Spec)
	}
	cat := MergeAll(all, suppliers.AuthoritativeName(specs))

	s.mu.Lock()
	s.catalog = cat
	s.version++
	ver := s.version
	s.mu.Unlock()

	observability.SetHotelCount(cat.Len())
	log.Info().Int("records", len(all)).Int("hotels", cat.Len()).Int64("version", ver).Msg("catalog refreshed")
	return nil
}

// Snapshot returns the current merged catalog and its version. The catalog
// may be nil before the first successful refresh. The version feeds cache
// keys so stale responses die with their snapshot.
func (s *CatalogService) Snapshot() (*Catalog, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, s.version
}

package app_test

import (
	"context"
	"errors"
	"testing"

	"hotelmerge/internal/adapters/suppliers"
	"hotelmerge/internal/app"
)

// fakeClient serves canned raw records per URL.
type fakeClient struct {
	feeds map[string][]map[string]any
	err   error
}

func (f *fakeClient) FetchRecords(ctx context.Context, url string) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.feeds[url], nil
}

func TestCatalogService_RefreshMergesInEndpointOrder(t *testing.T) {
	client := &fakeClient{feeds: map[string][]map[string]any{
		"acme": {{
			"Id": "iJhz", "DestinationId": float64(5432), "Name": "Beach Villas Singapore",
			"Latitude": 1.264751, "Country": "SG",
		}},
		"paperflies": {{
			"hotel_id": "iJhz", "destination_id": float64(5432), "hotel_name": "Beach Villas Singapore",
			"location": map[string]any{"country": "Singapore"},
		}},
	}}
	eps := []app.Endpoint{
		{Spec: suppliers.Acme, URL: "acme"},
		{Spec: suppliers.Paperflies, URL: "paperflies"},
	}
	svc := app.NewCatalogService(client, eps, 2)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	cat, ver := svc.Snapshot()
	if cat == nil || ver != 1 {
		t.Fatalf("snapshot: cat=%v ver=%d", cat, ver)
	}
	h, ok := cat.Get("iJhz")
	if !ok || cat.Len() != 1 {
		t.Fatalf("expected one merged hotel, len=%d", cat.Len())
	}
	// even though fetches run concurrently, merge order follows endpoint
	// order, so the paperflies country override is stable
	if h.Location.Country == nil || *h.Location.Country != "Singapore" {
		t.Fatalf("country = %v", h.Location.Country)
	}
	if h.Location.Lat == nil || *h.Location.Lat != 1.264751 {
		t.Fatalf("lat = %v", h.Location.Lat)
	}
}

func TestCatalogService_DropsBadRecordsKeepsBatch(t *testing.T) {
	client := &fakeClient{feeds: map[string][]map[string]any{
		"acme": {
			{"Id": "ok1", "DestinationId": float64(1), "Name": "Fine"},
			{"DestinationId": float64(2), "Name": "No id"},          // malformed
			{"Id": "ok2", "DestinationId": float64(3), "Name": "Also fine"},
		},
	}}
	svc := app.NewCatalogService(client, []app.Endpoint{{Spec: suppliers.Acme, URL: "acme"}}, 1)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	cat, _ := svc.Snapshot()
	if cat.Len() != 2 {
		t.Fatalf("len = %d, want the two well-formed records", cat.Len())
	}
}

func TestCatalogService_FailedFetchKeepsPreviousSnapshot(t *testing.T) {
	client := &fakeClient{feeds: map[string][]map[string]any{
		"acme": {{"Id": "ok1", "DestinationId": float64(1), "Name": "Fine"}},
	}}
	svc := app.NewCatalogService(client, []app.Endpoint{{Spec: suppliers.Acme, URL: "acme"}}, 1)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	client.err = errors.New("supplier down")
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	cat, ver := svc.Snapshot()
	if cat == nil {
		t.Fatalf("previous snapshot lost")
	}
	if cat.Len() != 1 || ver != 1 {
		t.Fatalf("previous snapshot lost: len=%d ver=%d", cat.Len(), ver)
	}
}

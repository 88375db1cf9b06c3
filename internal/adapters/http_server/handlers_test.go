package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "hotelmerge/internal/adapters/http_server"
	"hotelmerge/internal/adapters/supplierapi"
	"hotelmerge/internal/adapters/suppliers"
	"hotelmerge/internal/app"
	"hotelmerge/internal/domain"
)

const (
	acmeFeed = `[{"Id":"iJhz","DestinationId":5432,"Name":"Beach Villas Singapore",
		"Latitude":1.264751,"Longitude":103.824006,
		"Address":" 8 Sentosa Gateway, Beach Villas ","PostalCode":"098269",
		"City":"Singapore","Country":"SG","Facilities":["Pool","WiFi"]},
		{"Id":"SjyX","DestinationId":5434,"Name":"InterContinental","Country":"SG"}]`

	patagoniaFeed = `[{"id":"iJhz","destination":5432,"name":"Beach Villas Singapore",
		"lat":null,"lng":null,"address":null,"info":"Located at the southernmost tip.",
		"amenities":["Aircon","Tv"],
		"images":{"rooms":[{"url":"https://img/i1.jpg","description":"Double room"}],
		"amenities":[{"url":"https://img/i57.jpg","description":"Bar"}]}}]`

	paperfliesFeed = `[{"hotel_id":"iJhz","destination_id":5432,"hotel_name":"Beach Villas Singapore",
		"location":{"address":"8 Sentosa Gateway, Beach Villas, 098269","country":"Singapore"},
		"details":"Surrounded by tropical gardens.",
		"amenities":{"general":["outdoor pool"],"room":["tv"]},
		"images":{"rooms":[{"link":"https://img/i1.jpg","caption":"Double room"}],
		"site":[{"link":"https://img/i55.jpg","caption":"Front"}]},
		"booking_conditions":["All children are welcome."]}]`
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	// fake supplier feeds
	mux := http.NewServeMux()
	serve := func(path, body string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	serve("/suppliers/acme", acmeFeed)
	serve("/suppliers/patagonia", patagoniaFeed)
	serve("/suppliers/paperflies", paperfliesFeed)
	feeds := httptest.NewServer(mux)
	t.Cleanup(feeds.Close)

	client := supplierapi.New(100)
	var eps []app.Endpoint
	for _, spec := range suppliers.Builtin() {
		eps = append(eps, app.Endpoint{Spec: spec, URL: feeds.URL + "/suppliers/" + spec.Name})
	}
	catalog := app.NewCatalogService(client, eps, len(eps))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := catalog.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q:       app.NewQueryService(catalog, nil, time.Minute),
		Catalog: catalog,
	})
	api := httptest.NewServer(srv.Mux())
	t.Cleanup(api.Close)
	return api
}

func getHotels(t *testing.T, api *httptest.Server, query string) (*http.Response, []domain.Hotel) {
	t.Helper()
	resp, err := http.Get(api.URL + "/v1/hotels" + query)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var hotels []domain.Hotel
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&hotels); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp, hotels
}

func TestListHotels_MergedAcrossSuppliers(t *testing.T) {
	api := newTestServer(t)

	resp, hotels := getHotels(t, api, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(hotels) != 2 {
		t.Fatalf("len = %d, want 2 merged hotels", len(hotels))
	}

	h := hotels[0]
	if h.ID != "iJhz" {
		t.Fatalf("encounter order: first id = %s", h.ID)
	}
	// lat from acme survives patagonia's null; country overridden by paperflies
	if h.Location.Lat == nil || *h.Location.Lat != 1.264751 {
		t.Fatalf("lat = %v", h.Location.Lat)
	}
	if h.Location.Country == nil || *h.Location.Country != "Singapore" {
		t.Fatalf("country = %v, want paperflies override", h.Location.Country)
	}
	// amenities unioned across three feeds, lower-cased
	generalSet := strings.Join(h.Amenities.General, "|")
	for _, want := range []string{"pool", "wifi", "outdoor pool"} {
		if !strings.Contains(generalSet, want) {
			t.Fatalf("general missing %q: %v", want, h.Amenities.General)
		}
	}
	// same room image from two suppliers collapses
	if len(h.Images.Rooms) != 1 {
		t.Fatalf("rooms gallery = %+v", h.Images.Rooms)
	}
	if len(h.BookingConditions) != 1 {
		t.Fatalf("booking_conditions = %v", h.BookingConditions)
	}
}

func TestListHotels_Filters(t *testing.T) {
	api := newTestServer(t)

	_, hotels := getHotels(t, api, "?hotels=SjyX")
	if len(hotels) != 1 || hotels[0].ID != "SjyX" {
		t.Fatalf("hotel filter: %+v", hotels)
	}

	_, hotels = getHotels(t, api, "?destinations=5432")
	if len(hotels) != 1 || hotels[0].ID != "iJhz" {
		t.Fatalf("destination filter: %+v", hotels)
	}

	_, hotels = getHotels(t, api, "?hotels=iJhz,SjyX&destinations=5434")
	if len(hotels) != 1 || hotels[0].ID != "SjyX" {
		t.Fatalf("conjunction: %+v", hotels)
	}

	_, hotels = getHotels(t, api, "?hotels=none&destinations=none")
	if len(hotels) != 2 {
		t.Fatalf("sentinel should mean no filter: %+v", hotels)
	}

	resp, _ := getHotels(t, api, "?destinations=abc")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListHotels_ETag(t *testing.T) {
	api := newTestServer(t)

	resp, _ := getHotels(t, api, "")
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	req, _ := http.NewRequest(http.MethodGet, api.URL+"/v1/hotels", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", resp2.StatusCode)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	api := newTestServer(t)

	resp, err := http.Post(api.URL+"/v1/refresh", "", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	api := newTestServer(t)

	resp, err := http.Get(api.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotelmerge/internal/app"
)

type Handlers struct {
	Q       *app.QueryService
	Catalog *app.CatalogService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Post("/v1/refresh", h.refresh)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// listHotels serves GET /v1/hotels?hotels=id1,id2&destinations=5,6.
// Either filter may be absent or the sentinel "none", meaning no filter on
// that dimension; both present means both must match.
func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotelIDs := app.ParseHotelIDs(r.URL.Query().Get("hotels"))
	destIDs, err := app.ParseDestinationIDs(r.URL.Query().Get("destinations"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid destinations", err.Error())
		return
	}

	hotels, err := h.Q.Find(r.Context(), hotelIDs, destIDs)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Query failed", err.Error())
		return
	}

	etag, body := calcETagAndBody(hotels)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listHotels body")
	}
}

// refresh re-runs the supplier fetch and swaps the merged snapshot.
func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Refresh(r.Context()); err != nil {
		writeProblem(w, http.StatusBadGateway, "Refresh failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

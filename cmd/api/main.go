package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	server "hotelmerge/internal/adapters/http_server"
	"hotelmerge/internal/adapters/observability"
	redisad "hotelmerge/internal/adapters/redis"
	"hotelmerge/internal/adapters/supplierapi"
	"hotelmerge/internal/adapters/suppliers"
	"hotelmerge/internal/app"
	"hotelmerge/internal/domain"
	"hotelmerge/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	client := supplierapi.New(cfg.SupplierRPS)

	eps := make([]app.Endpoint, 0, len(suppliers.Builtin()))
	for _, spec := range suppliers.Builtin() {
		eps = append(eps, app.Endpoint{
			Spec: spec,
			URL:  strings.TrimRight(cfg.SupplierBase, "/") + "/" + spec.Name,
		})
	}
	catalog := app.NewCatalogService(client, eps, cfg.FetchWorkers)

	// response cache is optional; without redis queries hit the snapshot directly
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	q := app.NewQueryService(catalog, cache, cfg.CacheTTL)

	// initial load; the API still starts on failure and /v1/refresh can retry
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	if err := catalog.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("initial supplier refresh failed; serving empty catalog")
	}
	cancel()

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Catalog: catalog})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

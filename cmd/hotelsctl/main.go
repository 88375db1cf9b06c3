package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotelmerge/internal/adapters/observability"
	"hotelmerge/internal/adapters/supplierapi"
	"hotelmerge/internal/adapters/suppliers"
	"hotelmerge/internal/app"
	"hotelmerge/internal/shared"
)

var (
	flagBase    string
	flagRPS     int
	flagTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "hotelsctl <hotel_ids> <destination_ids>",
	Short: "Fetch, merge and filter hotel data from all suppliers",
	Long: `hotelsctl fetches every supplier feed, merges duplicate hotels into one
canonical record each, filters by the given ids and prints the result as JSON.

Both arguments are comma-separated lists; pass "none" to skip a filter:

  hotelsctl iJhz,SjyX none
  hotelsctl none 5432
  hotelsctl none none`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	hotelIDs := app.ParseHotelIDs(args[0])
	destIDs, err := app.ParseDestinationIDs(args[1])
	if err != nil {
		return err
	}

	client := supplierapi.New(flagRPS)
	eps := make([]app.Endpoint, 0, len(suppliers.Builtin()))
	for _, spec := range suppliers.Builtin() {
		eps = append(eps, app.Endpoint{
			Spec: spec,
			URL:  strings.TrimRight(flagBase, "/") + "/" + spec.Name,
		})
	}
	catalog := app.NewCatalogService(client, eps, len(eps))

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()
	if err := catalog.Refresh(ctx); err != nil {
		return err
	}

	q := app.NewQueryService(catalog, nil, 0)
	hotels, err := q.Find(ctx, hotelIDs, destIDs)
	if err != nil {
		return err
	}

	out, err := json.Marshal(hotels)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	rootCmd.Flags().StringVar(&flagBase, "supplier-base", cfg.SupplierBase, "base URL for supplier endpoints")
	rootCmd.Flags().IntVar(&flagRPS, "rps", cfg.SupplierRPS, "client-side rate limit per second")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", cfg.FetchTimeout, "overall fetch timeout")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

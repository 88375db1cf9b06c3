package domain

import "context"

// SupplierClient fetches one supplier's raw records. Each record is a
// generic key-value map; the adapter layer owns the field vocabulary.
type SupplierClient interface {
	FetchRecords(ctx context.Context, url string) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	SupplierBase  string
	SupplierRPS   int
	FetchWorkers  int
	FetchTimeout  time.Duration
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	CacheTTL      time.Duration
}

func Load() Config {
	_ = godotenv.Load() // best-effort; env vars win

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		SupplierBase: env("SUPPLIER_BASE_URL", "https://5f2be0b4ffc88500167b85a0.mockapi.io/suppliers"),
		SupplierRPS:  atoi("SUPPLIER_RPS", 5),
		FetchWorkers: atoi("FETCH_WORKERS", 3),
		FetchTimeout: time.Duration(atoi("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

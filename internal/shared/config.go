package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	HotelsFile   string
	BookingsFile string
	MySQLDSN     string // when set, inventory loads from MySQL instead of the JSON files
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	Workers      int
	SearchRPS    int
	CacheTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		HotelsFile:   env("HOTELS_FILE", "hotels.json"),
		BookingsFile: env("BOOKINGS_FILE", "bookings.json"),
		MySQLDSN:     env("MYSQL_DSN", ""),
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		Workers:      atoi("INGEST_WORKERS", 8),
		SearchRPS:    atoi("SEARCH_RPS", 20),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.MySQLDSN == "" && c.HotelsFile == "" {
		log.Warn().Msg("no MYSQL_DSN and no HOTELS_FILE configured")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

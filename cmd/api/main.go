package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "hotel_reservation/internal/adapters/http_server"
	"hotel_reservation/internal/adapters/observability"
	redisad "hotel_reservation/internal/adapters/redis"
	"hotel_reservation/internal/app"
	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/shared"
	"hotel_reservation/internal/storage/memory"
	mysqlrepo "hotel_reservation/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	store := loadInventory(ctx, cfg)
	log.Info().
		Int("hotels", len(store.Hotels())).
		Int("bookings", len(store.Bookings())).
		Msg("inventory loaded")

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	avail := app.NewAvailabilityService(store, cache, cfg.CacheTTL, nil)

	// http
	srv := server.New(cfg.SearchRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Inv: store, Avail: avail})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// loadInventory reads the whole data set once: from MySQL when a DSN is
// configured, from the JSON files otherwise. A load failure is the only
// fatal error in the process.
func loadInventory(ctx context.Context, cfg shared.Config) *memory.Store {
	if cfg.MySQLDSN == "" {
		store, err := memory.LoadFiles(cfg.HotelsFile, cfg.BookingsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("loading data files failed")
		}
		return store
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	repo := mysqlrepo.New(db)
	hotels, err := repo.LoadHotels(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("loading hotels from db failed")
	}
	bookings, err := repo.LoadBookings(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("loading bookings from db failed")
	}
	return memory.New(hotels, bookings)
}

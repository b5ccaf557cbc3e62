package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_reservation/internal/adapters/observability"
	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/shared"
	"hotel_reservation/internal/storage/memory"
	mysqlrepo "hotel_reservation/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("hotels", cfg.HotelsFile).
		Str("bookings", cfg.BookingsFile).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	store, err := memory.LoadFiles(cfg.HotelsFile, cfg.BookingsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading data files failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, h := range store.Hotels() {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(h domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertHotel(ctx, h); err != nil {
				log.Warn().Str("id", h.ID).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Str("id", h.ID).Int("rooms", len(h.Rooms)).Msg("ingest ok")
		}(h)
	}

	wg.Wait()

	if err := repo.ReplaceBookings(ctx, store.Bookings()); err != nil {
		log.Fatal().Err(err).Msg("booking ingest failed")
	}

	log.Info().Msg("ingestion completed")
}

package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"hotel_reservation/internal/adapters/observability"
	"hotel_reservation/internal/adapters/shell"
	"hotel_reservation/internal/app"
	"hotel_reservation/internal/shared"
	"hotel_reservation/internal/storage/memory"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	hotelsFile := flag.String("hotels", cfg.HotelsFile, "path to hotels JSON file")
	bookingsFile := flag.String("bookings", cfg.BookingsFile, "path to bookings JSON file")
	flag.Parse()

	store, err := memory.LoadFiles(*hotelsFile, *bookingsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading data files failed")
	}

	avail := app.NewAvailabilityService(store, nil, 0, nil)
	sh := shell.New(store, avail)

	if err := sh.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("shell failed")
	}
}

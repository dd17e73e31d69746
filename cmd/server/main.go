package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradelens/internal/config"
	"tradelens/internal/database"
	"tradelens/internal/modules/journal"
	"tradelens/internal/scheduler"
	"tradelens/internal/server"
	"tradelens/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger isn't up yet
		panic(err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Str("data_dir", cfg.DataDir).Msg("Starting TradeLens")

	// journal.db - append-only trade ledger plus daily snapshots
	journalDB, err := database.New(database.Config{
		Path:    cfg.JournalDBPath(),
		Profile: database.ProfileLedger,
		Name:    "journal",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize journal database")
	}
	defer journalDB.Close()

	if err := journal.InitSchema(journalDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize journal schema")
	}

	tradeRepo := journal.NewTradeRepository(journalDB.Conn(), log)
	snapshotRepo := journal.NewSnapshotRepository(journalDB.Conn(), log)

	// Import a trades.json snapshot on first boot only; the ledger is
	// the source of truth once populated
	if cfg.TradesFile != "" {
		count, err := tradeRepo.Count()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to count trades")
		}
		if count == 0 {
			importer := journal.NewImporter(tradeRepo, log)
			imported, err := importer.Run(cfg.TradesFile)
			if err != nil {
				log.Fatal().Err(err).Str("file", cfg.TradesFile).Msg("Trade import failed")
			}
			log.Info().Int("count", imported).Msg("Imported trades from snapshot")
		} else {
			log.Debug().Int("count", count).Msg("Journal already populated, skipping import")
		}
	}

	// Background jobs
	sched := scheduler.New(log)
	snapshotJob := scheduler.NewSnapshotJob(tradeRepo, snapshotRepo, log)
	if err := sched.AddJob(cfg.SnapshotSchedule, snapshotJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register snapshot job")
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Log:       log,
		JournalDB: journalDB,
		Config:    cfg,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

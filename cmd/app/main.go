package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NutriPlan-Backend/cmd/config"
	migration "NutriPlan-Backend/cmd/database/migrate"
	"NutriPlan-Backend/internal/utils"
	"NutriPlan-Backend/pkg/subscription"

	"github.com/rs/zerolog"
)

func main() {
	utils.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	app, err := config.NewApp(db, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("app setup failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweepInterval := 24 * time.Hour
	if raw := utils.GetConfig("SWEEP_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			sweepInterval = parsed
		} else {
			logger.Warn().Str("value", raw).Msg("invalid SWEEP_INTERVAL, using default")
		}
	}
	sweeper := subscription.NewSweeper(subscription.NewSubscriptionRepository(db), sweepInterval, logger)
	go sweeper.Start(ctx)

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logger.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()
	logger.Info().Str("port", port).Msg("server started")

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}

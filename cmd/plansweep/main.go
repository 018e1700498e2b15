// Command plansweep deactivates every chef whose subscription plan has
// expired. Intended for a daily cron schedule; the API server performs the
// same check lazily per request, so the sweep only needs to run eventually.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/menuzap/menuzap/internal/chef"
	"github.com/menuzap/menuzap/pkg/config"
	"github.com/menuzap/menuzap/pkg/logger"
	mongodb "github.com/menuzap/menuzap/pkg/mongo"
)

type sweepConfig struct {
	Logger logger.Config
	Mongo  mongodb.Config

	Timeout time.Duration `env:"SWEEP_TIMEOUT" envDefault:"2m"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg sweepConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, logger.WithAttr(slog.String("app", "plansweep")))

	ctx, timeoutCancel := context.WithTimeout(ctx, cfg.Timeout)
	defer timeoutCancel()

	client, err := mongodb.New(ctx, cfg.Mongo)
	if err != nil {
		log.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	store := chef.NewMongoStore(client.Database(cfg.Mongo.Database))
	n, err := store.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Error("plan sweep failed", "error", err)
		os.Exit(1)
	}
	log.Info("plan sweep finished", "deactivated", n)
}

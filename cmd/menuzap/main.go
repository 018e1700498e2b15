// Command menuzap runs the restaurant ordering API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/menuzap/menuzap/internal/chef"
	"github.com/menuzap/menuzap/internal/httpapi"
	"github.com/menuzap/menuzap/internal/menu"
	"github.com/menuzap/menuzap/internal/order"
	"github.com/menuzap/menuzap/internal/plan"
	"github.com/menuzap/menuzap/pkg/config"
	"github.com/menuzap/menuzap/pkg/httpserver"
	"github.com/menuzap/menuzap/pkg/logger"
	"github.com/menuzap/menuzap/pkg/mercadopago"
	mongodb "github.com/menuzap/menuzap/pkg/mongo"
)

type appConfig struct {
	Logger      logger.Config
	Mongo       mongodb.Config
	HTTP        httpserver.Config
	MercadoPago mercadopago.Config

	// PlansFile optionally points at a YAML plan catalog overriding the
	// built-in amounts and reference prefixes.
	PlansFile string `env:"PLANS_FILE"`

	// SweepInterval controls the in-process expired-plan sweep. Zero
	// disables it (run cmd/plansweep from a scheduler instead).
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"24h"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, logger.WithAttr(slog.String("app", "menuzap")))

	client, err := mongodb.New(ctx, cfg.Mongo)
	if err != nil {
		log.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongodb disconnect failed", "error", err)
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	chefStore := chef.NewMongoStore(db)
	menuStore := menu.NewMongoStore(db)
	orderStore := order.NewMongoStore(db)
	for _, ensure := range []func(context.Context) error{
		chefStore.EnsureIndexes,
		menuStore.EnsureIndexes,
		orderStore.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Error("index creation failed", "error", err)
			os.Exit(1)
		}
	}

	mp, err := mercadopago.New(cfg.MercadoPago)
	if err != nil {
		log.Error("mercadopago client setup failed", "error", err)
		os.Exit(1)
	}

	catalog := plan.DefaultCatalog()
	if cfg.PlansFile != "" {
		catalog, err = plan.LoadCatalog(cfg.PlansFile)
		if err != nil {
			log.Error("plan catalog load failed", "file", cfg.PlansFile, "error", err)
			os.Exit(1)
		}
	}

	chefSvc := chef.NewService(chefStore)
	menuSvc := menu.NewService(menuStore)
	orderSvc := order.NewService(orderStore, chefStore, menuStore)
	planSvc := plan.NewService(chefStore, mp, catalog, plan.WithLogger(log))

	if cfg.SweepInterval > 0 {
		go runSweep(ctx, planSvc, cfg.SweepInterval, log)
	}

	handlers := httpapi.NewHandlers(chefSvc, menuSvc, orderSvc, planSvc, httpapi.WithLogger(log))
	router := httpapi.NewRouter(handlers, mongodb.Healthcheck(client))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

// runSweep periodically deactivates chefs whose plan expired, so access does
// not depend solely on request-time lazy checks.
func runSweep(ctx context.Context, plans *plan.Service, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := plans.DeactivateExpired(ctx)
			if err != nil {
				log.Error("plan sweep failed", "error", err)
				continue
			}
			if n > 0 {
				log.Info("plan sweep deactivated expired plans", "count", n)
			}
		}
	}
}

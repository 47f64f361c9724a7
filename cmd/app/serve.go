package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/catalogrepo"
	"storefront/internal/adapters/out/natsbus"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/jobs"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the cart expiry job and the event publisher",
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, logger := opts.cfg, opts.logger
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = db.AutoMigrate(&orderrepo.OrderDTO{}, &cartrepo.CartDTO{}, &cartrepo.CartLineDTO{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	products, err := catalogrepo.Load(cfg.CatalogPath, logger)
	if err != nil {
		return err
	}

	conn, err := natsbus.Connect(cfg.NATSURL, "storefront-server", logger)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Drain() }()

	app := cmd.NewCompositionRoot(cfg, db, products, natsbus.NewPublisher(conn), logger)

	server := httpin.NewServer(app.HTTPHandlers(), logger, time.Now)
	e, err := httpin.NewEcho(ctx, server, httpin.EchoConfig{
		StaffSecret:      []byte(cfg.StaffTokenSecret),
		ValidateRequests: cfg.OpenAPIValidation,
	})
	if err != nil {
		return err
	}

	expireCarts := app.CreateExpireCartsCommandHandler()
	jobManager := jobs.NewJobManager(
		jobs.NewCartExpiryJob(&expireCarts, cfg.CartExpirySchedule, logger),
	)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

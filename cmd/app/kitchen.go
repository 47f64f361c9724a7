package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"storefront/internal/adapters/out/natsbus"
	"storefront/internal/adapters/out/orderapi"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/jobs"
	"storefront/internal/pkg/errs"
	"storefront/internal/realtime"

	"github.com/spf13/cobra"
)

const boardInterval = time.Second

type kitchenOptions struct {
	*rootOptions
	APIBaseURL string
	Token      string
}

func newKitchenCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &kitchenOptions{rootOptions: rootOpts}

	c := &cobra.Command{
		Use:   "kitchen",
		Short: "Staff tools working against a running server",
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if err := rootOpts.load(); err != nil {
				return err
			}
			if opts.APIBaseURL == "" {
				opts.APIBaseURL = rootOpts.cfg.APIBaseURL
			}
			if opts.Token == "" {
				opts.Token = rootOpts.cfg.StaffToken
			}
			if opts.Token == "" {
				return errs.NewValueIsRequiredError("STAFF_TOKEN")
			}
			return nil
		},
	}

	c.PersistentFlags().StringVar(&opts.APIBaseURL, "api", "", "server base URL (default API_BASE_URL)")
	c.PersistentFlags().StringVar(&opts.Token, "token", "", "staff token (default STAFF_TOKEN)")

	c.AddCommand(newKitchenWatchCommand(opts))
	c.AddCommand(newKitchenSetStatusCommand(opts))

	return c
}

func (o *kitchenOptions) client() (*orderapi.Client, error) {
	return orderapi.NewClient(o.APIBaseURL, o.Token, o.cfg.APITimeout)
}

func newKitchenWatchCommand(opts *kitchenOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show the live kitchen board",
		RunE: func(c *cobra.Command, _ []string) error {
			return runKitchenWatch(c.Context(), opts, c.OutOrStdout())
		},
	}
}

func runKitchenWatch(ctx context.Context, opts *kitchenOptions, out io.Writer) error {
	client, err := opts.client()
	if err != nil {
		return err
	}

	coordinator := realtime.NewCoordinator(
		client,
		realtime.NewWriterNotifier(out),
		realtime.Preferences{Sound: opts.cfg.NotifySound},
		opts.logger,
	)
	if err = coordinator.Refresh(ctx); err != nil {
		return err
	}

	conn, err := natsbus.Connect(opts.cfg.NATSURL, "storefront-kitchen", opts.logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	sub, err := natsbus.NewSubscriber(conn, opts.logger).SubscribeKitchen(ctx, coordinator.HandleEvent)
	if err != nil {
		return err
	}
	defer func() { _ = sub.Unsubscribe() }()

	refreshJob := jobs.NewOrderRefreshJob(coordinator, opts.cfg.RefreshSchedule, opts.logger)
	jobManager := jobs.NewJobManager(refreshJob)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	go func() { _ = coordinator.Run(ctx) }()

	ticker := time.NewTicker(boardInterval)
	defer ticker.Stop()

	last := ""
	for {
		orders := coordinator.Orders()
		if fp := realtime.Fingerprint(orders); fp != last {
			last = fp
			fmt.Fprintln(out)
			if err = realtime.RenderBoard(out, orders, coordinator.Stats(), coordinator.Pending); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

type setStatusOptions struct {
	*kitchenOptions
	Notes string
}

func newKitchenSetStatusCommand(kitchenOpts *kitchenOptions) *cobra.Command {
	opts := &setStatusOptions{kitchenOptions: kitchenOpts}

	c := &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Move an order along its lifecycle",
		Long: `Move an order along its lifecycle.

The transition is checked locally before the server is asked.

Example:
  storefront kitchen set-status 550e8400-e29b-41d4-a716-446655440000 PREPARING`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runSetStatus(c.Context(), opts, args[0], args[1], c.OutOrStdout())
		},
	}

	c.Flags().StringVar(&opts.Notes, "notes", "", "note recorded with the status change")

	return c
}

func runSetStatus(ctx context.Context, opts *setStatusOptions, rawID, rawStatus string, out io.Writer) error {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	client, err := opts.client()
	if err != nil {
		return err
	}

	coordinator := realtime.NewCoordinator(
		client,
		realtime.NewLogNotifier(opts.logger),
		realtime.Preferences{},
		opts.logger,
		realtime.WithStatuses(order.Statuses()...),
	)
	if err = coordinator.Refresh(ctx); err != nil {
		return err
	}

	m, err := coordinator.ChangeStatus(ctx, id, target, opts.Notes)
	if err != nil {
		return err
	}

	snap, _ := coordinator.Order(id)
	fmt.Fprintf(out, "%s: %s -> %s (%s)\n", snap.Number, m.From, m.To, m.State)
	return nil
}

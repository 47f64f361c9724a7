package main

import (
	"context"
	"fmt"
	"io"

	"storefront/internal/adapters/out/natsbus"
	"storefront/internal/adapters/out/orderapi"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/realtime"

	"github.com/spf13/cobra"
)

func newTrackCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "track <order-id>",
		Short: "Follow one order until it is completed or cancelled",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTrack(c.Context(), opts, args[0], c.OutOrStdout())
		},
	}
}

func runTrack(ctx context.Context, opts *rootOptions, rawID string, out io.Writer) error {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return err
	}

	client, err := orderapi.NewClient(opts.cfg.APIBaseURL, "", opts.cfg.APITimeout)
	if err != nil {
		return err
	}
	conn, err := natsbus.Connect(opts.cfg.NATSURL, "storefront-track", opts.logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	tracker := realtime.NewOrderTracker(client, natsbus.NewSubscriber(conn, opts.logger), opts.logger)
	updates, err := tracker.Watch(ctx, id)
	if err != nil {
		return err
	}
	defer func() { _ = tracker.Close() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "%s  %s  ready in ~%d min\n", snap.Number, snap.Status.Label(), snap.PrepTimeMinutes)
			if snap.Status.IsTerminal() {
				return nil
			}
		}
	}
}

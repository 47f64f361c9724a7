package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the state shared by every subcommand.
type rootOptions struct {
	Verbose bool
	EnvFile string

	cfg    cmd.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("storefront: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Restaurant ordering service and staff tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newServeCommand(opts))
	root.AddCommand(newKitchenCommand(opts))
	root.AddCommand(newTrackCommand(opts))
	root.AddCommand(newQuoteCommand(opts))
	root.AddCommand(newTokenCommand(opts))

	return root
}

// load reads the dotenv file when there is one, then the environment.
func (o *rootOptions) load() error {
	if err := godotenv.Load(o.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		return err
	}
	o.cfg = cfg

	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

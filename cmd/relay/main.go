package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/channel-mirror/internal/di"
	deliveryService "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/service"
	"github.com/reshetovitsme/channel-mirror/internal/shared/config"
	"github.com/reshetovitsme/channel-mirror/internal/shared/domain"
	httpServer "github.com/reshetovitsme/channel-mirror/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var logLevel = new(slog.LevelVar)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	if err := rootCmd().Execute(); err != nil {
		slog.Error("Relay stopped with error", "error", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "relay",
		Short:         "Mirror posts from source channels to target channels",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), domain.RunModeAll)
		},
	}

	for _, mode := range []struct {
		mode  domain.RunMode
		short string
	}{
		{domain.RunModeControl, "Run only the operator control bot"},
		{domain.RunModeWorker, "Run only the forwarding worker and HTTP server"},
		{domain.RunModeAll, "Run control and worker in one process"},
	} {
		root.AddCommand(&cobra.Command{
			Use:   mode.mode.String(),
			Short: mode.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), mode.mode)
			},
		})
	}

	return root
}

func run(parent context.Context, mode domain.RunMode) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		return oops.With("context", "failed to setup dependency injection").Wrap(err)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return err
	}
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Warn("Unknown log level, keeping info", "log_level", cfg.LogLevel)
	}

	bots, err := di.Bots(injector, mode)
	if err != nil {
		return oops.With("mode", mode, "context", "failed to start telegram bots").Wrap(err)
	}

	g, ctx := errgroup.WithContext(ctx)

	if mode != domain.RunModeControl {
		pruner := do.MustInvoke[*deliveryService.Pruner](injector)
		if err := pruner.Start(); err != nil {
			return err
		}

		server := do.MustInvoke[*httpServer.Server](injector)
		g.Go(func() error {
			return server.Start()
		})
	}

	for _, b := range bots {
		g.Go(func() error {
			b.Start(ctx)
			return nil
		})
	}

	slog.Info("Relay started", "mode", mode, "bots", len(bots), "port", cfg.HTTPPort)

	<-ctx.Done()
	slog.Info("Shutting down...")

	// the HTTP server only returns once shut down
	if err := di.Shutdown(injector, mode); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
	return g.Wait()
}

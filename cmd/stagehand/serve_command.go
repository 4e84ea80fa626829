package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/logging"
	"stagehand/internal/server"
	"stagehand/internal/store"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			// One writer per data dir: concurrent servers against the same
			// database would break the single-writer assumption the engine
			// relies on.
			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "stagehand.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire data dir lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another stagehand instance is serving %s", cfg.Paths.DataDir)
			}
			defer func() { _ = lock.Unlock() }()

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			service := api.NewService(st, cfg, logger)
			srv, err := server.New(cfg, service, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := srv.Start(runCtx); err != nil {
				return err
			}
			defer srv.Stop()

			<-runCtx.Done()
			logger.Info("shutting down")
			return nil
		},
	}
}

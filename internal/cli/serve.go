package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vilaca/devfinder/internal/config"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile widget over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd.Context())
		},
	}

	cmd.Flags().Int(config.KeyPort, 8080, "HTTP listen port")
	cmd.Flags().Int(config.KeyRefreshMS, 1000, "Page reload interval while a lookup is loading, in milliseconds")
	bindFlags(a.v, cmd.Flags().Lookup, config.KeyPort, config.KeyRefreshMS)
	return cmd
}

func (a *app) runServe(ctx context.Context) error {
	logger, sync, err := a.logger(false)
	if err != nil {
		return err
	}
	defer sync()

	c, err := buildComponents(ctx, a.cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           buildServer(a.cfg, c),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Starting devfinder on http://localhost%s (store: %s, theme: %s)", srv.Addr, a.cfg.StoreBackend, c.theme.Mode())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

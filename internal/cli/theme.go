package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vilaca/devfinder/internal/logging"
	"github.com/vilaca/devfinder/internal/store"
	"github.com/vilaca/devfinder/internal/theme"
)

func newThemeCommand(a *app) *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the persisted display mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTheme(cmd.Context(), func(c *theme.Controller) error {
				fmt.Fprintln(cmd.OutOrStdout(), c.Mode())
				return nil
			})
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Flip and persist the display mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTheme(cmd.Context(), func(c *theme.Controller) error {
				if _, err := c.Toggle(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.Mode())
				return nil
			})
		},
	}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the display mode",
		Args:  cobra.NoArgs,
		RunE:  show.RunE,
	}
	cmd.AddCommand(show, toggle)
	return cmd
}

// withTheme opens the configured store only, without the HTTP stack.
func (a *app) withTheme(ctx context.Context, fn func(*theme.Controller) error) error {
	logger, sync, err := a.logger(false)
	if err != nil {
		return err
	}
	defer sync()

	st, err := store.Open(a.cfg.StoreBackend, a.cfg.StorePath, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	return fn(theme.NewController(ctx, st, logger))
}

func closeStore(st store.Store, logger logging.Logger) {
	if err := st.Close(); err != nil {
		logger.Printf("[Store] Failed to close: %v", err)
	}
}

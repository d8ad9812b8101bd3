package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vilaca/devfinder/internal/dashboard"
	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/profileview"
	"github.com/vilaca/devfinder/internal/tui"
)

func newLookupCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <username>",
		Short: "Look up one profile and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, sync, err := a.logger(false)
			if err != nil {
				return err
			}
			defer sync()

			c, err := buildComponents(cmd.Context(), a.cfg, logger)
			if err != nil {
				return err
			}
			defer c.Close()

			snap, ok := c.fetcher.Lookup(cmd.Context(), args[0])
			if !ok {
				return errors.New("username must not be blank")
			}

			out := cmd.OutOrStdout()
			mode := c.theme.Mode()
			if asJSON {
				if err := dashboard.NewHTMLRenderer().RenderState(out, mode, snap); err != nil {
					return err
				}
			} else {
				view := profileview.Build(mode, snap)
				if view.Card != nil {
					fmt.Fprintln(out, tui.RenderCard(*view.Card, tui.StylesFor(mode), 0))
				}
			}

			if snap.Status == domain.StatusError {
				return fmt.Errorf("%s: %s", profileview.NoResults, snap.ErrorMessage())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the lookup state as JSON")
	return cmd
}

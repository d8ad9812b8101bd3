package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vilaca/devfinder/internal/tui"
)

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the profile widget in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, sync, err := a.logger(true)
			if err != nil {
				return err
			}
			defer sync()

			c, err := buildComponents(cmd.Context(), a.cfg, logger)
			if err != nil {
				return err
			}
			defer c.Close()

			model := tui.New(cmd.Context(), c.fetcher, c.theme)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

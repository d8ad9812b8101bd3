package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vilaca/devfinder/internal/config"
)

func newConfigCommand(a *app) *cobra.Command {
	var writePath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if writePath != "" {
				if err := config.Save(a.cfg, writePath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", writePath)
				return nil
			}

			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&writePath, "write", "", "Write the effective configuration to this file instead of printing it")
	return cmd
}

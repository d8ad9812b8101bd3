// Package cli defines the devfinder command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vilaca/devfinder/internal/config"
	"github.com/vilaca/devfinder/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	configFile string
	envFiles   []string
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "devfinder",
		Short: "Look up GitHub user profiles",
		Long: `devfinder looks up public GitHub profiles by username and shows them as a
profile card, in the browser (serve), the terminal (tui) or as plain output (lookup).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: ./devfinder.yaml or <user config dir>/devfinder/devfinder.yaml)")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "Dotenv files to load before reading the environment (default: .env)")
	flags.String(config.KeyGitHubURL, "", "GitHub REST API base URL")
	flags.String(config.KeyRequestTimeout, "", "Timeout for GitHub API requests")
	flags.String(config.KeyStoreBackend, "", "Theme preference store: file, sqlite or memory")
	flags.String(config.KeyStorePath, "", "Theme preference store location")
	flags.String(config.KeyLogLevel, "", "Log level: debug, info, warn or error")
	flags.String(config.KeyLogFormat, "", "Log format: console or json")
	flags.String(config.KeyLogFile, "", "Log file (default: stderr, discarded by tui)")
	bindFlags(a.v, flags.Lookup, config.KeyGitHubURL, config.KeyRequestTimeout, config.KeyStoreBackend,
		config.KeyStorePath, config.KeyLogLevel, config.KeyLogFormat, config.KeyLogFile)

	root.AddCommand(
		newServeCommand(a),
		newTUICommand(a),
		newLookupCommand(a),
		newThemeCommand(a),
		newConfigCommand(a),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig loads dotenv files and the layered configuration.
func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(a.envFiles...); err != nil {
		return err
	}
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg
	return nil
}

// logger builds the zap logger. With quiet set and no log file configured,
// logs are discarded so they do not corrupt a full-screen UI.
func (a *app) logger(quiet bool) (logging.Logger, func(), error) {
	if quiet && a.cfg.LogFile == "" {
		return logging.Nop{}, func() {}, nil
	}

	zl, err := logging.NewZapLogger(logging.Options{
		Level:  a.cfg.LogLevel,
		Format: a.cfg.LogFormat,
		File:   a.cfg.LogFile,
	})
	if err != nil {
		return nil, nil, err
	}
	return zl, func() { _ = zl.Sync() }, nil
}

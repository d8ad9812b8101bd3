package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/store"
)

// EnvPrefix is the prefix of all environment overrides (DEVFINDER_PORT, ...).
const EnvPrefix = "DEVFINDER"

// Config keys, shared by flags, env vars and the config file.
const (
	KeyPort           = "port"
	KeyGitHubURL      = "github-url"
	KeyRequestTimeout = "request-timeout"
	KeyStoreBackend   = "store"
	KeyStorePath      = "store-path"
	KeyRefreshMS      = "refresh-interval-ms"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
	KeyLogFile        = "log-file"
)

// Config holds application configuration.
type Config struct {
	Port              int           `mapstructure:"port"`
	GitHubURL         string        `mapstructure:"github-url"`
	RequestTimeout    time.Duration `mapstructure:"request-timeout"`
	StoreBackend      string        `mapstructure:"store"`
	StorePath         string        `mapstructure:"store-path"`
	RefreshIntervalMS int           `mapstructure:"refresh-interval-ms"`
	LogLevel          string        `mapstructure:"log-level"`
	LogFormat         string        `mapstructure:"log-format"`
	LogFile           string        `mapstructure:"log-file"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyGitHubURL, domain.GitHubAPIURL)
	v.SetDefault(KeyRequestTimeout, "30s")
	v.SetDefault(KeyStoreBackend, store.BackendFile)
	v.SetDefault(KeyStorePath, "")
	v.SetDefault(KeyRefreshMS, 1000)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}

// NewViper returns a viper instance with defaults, env binding and config
// file search paths set up.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName("devfinder")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(configDir())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadDotEnv loads key-value pairs from .env files into the environment.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the config file (if any) and builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath(cfg.StoreBackend)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request timeout %s: must be positive", c.RequestTimeout)
	}
	if c.RefreshIntervalMS <= 0 {
		return fmt.Errorf("invalid refresh interval %dms: must be positive", c.RefreshIntervalMS)
	}
	switch c.StoreBackend {
	case store.BackendFile, store.BackendSQLite, store.BackendMemory:
	default:
		return fmt.Errorf("invalid store backend %q: must be one of file, sqlite, memory", c.StoreBackend)
	}
	return nil
}

// DefaultStorePath returns the state location for a backend under the user config dir.
func DefaultStorePath(backend string) string {
	switch backend {
	case store.BackendSQLite:
		return filepath.Join(configDir(), "state.db")
	case store.BackendMemory:
		return ""
	default:
		return filepath.Join(configDir(), "state.json")
	}
}

// configDir returns the devfinder directory under the user config dir.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "devfinder")
}

// fileConfig is the YAML shape of Config; durations are written as strings.
type fileConfig struct {
	Port              int    `yaml:"port"`
	GitHubURL         string `yaml:"github-url"`
	RequestTimeout    string `yaml:"request-timeout"`
	StoreBackend      string `yaml:"store"`
	StorePath         string `yaml:"store-path"`
	RefreshIntervalMS int    `yaml:"refresh-interval-ms"`
	LogLevel          string `yaml:"log-level"`
	LogFormat         string `yaml:"log-format"`
	LogFile           string `yaml:"log-file,omitempty"`
}

// Marshal renders cfg as YAML in the config file format.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(fileConfig{
		Port:              cfg.Port,
		GitHubURL:         cfg.GitHubURL,
		RequestTimeout:    cfg.RequestTimeout.String(),
		StoreBackend:      cfg.StoreBackend,
		StorePath:         cfg.StorePath,
		RefreshIntervalMS: cfg.RefreshIntervalMS,
		LogLevel:          cfg.LogLevel,
		LogFormat:         cfg.LogFormat,
		LogFile:           cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return os.WriteFile(path, data, 0644)
}

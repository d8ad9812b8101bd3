package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// newTestViper returns a viper instance that ignores config files on the host.
func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := NewViper()
	v.AddConfigPath(t.TempDir())
	v.SetConfigName("devfinder-test-absent")
	return v
}

// TestLoad_Defaults tests loading config with no overrides.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestLoad_Defaults(t *testing.T) {
	// Arrange
	v := newTestViper(t)

	// Act
	cfg, err := Load(v)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.GitHubURL != "https://api.github.com" {
		t.Errorf("expected default GitHub URL, got %s", cfg.GitHubURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.StoreBackend != "file" || !strings.HasSuffix(cfg.StorePath, "state.json") {
		t.Errorf("expected file backend with state.json, got %s %s", cfg.StoreBackend, cfg.StorePath)
	}
}

// TestLoad_EnvOverrides tests loading config from environment variables.
func TestLoad_EnvOverrides(t *testing.T) {
	// Arrange
	t.Setenv("DEVFINDER_PORT", "3000")
	t.Setenv("DEVFINDER_STORE", "sqlite")
	t.Setenv("DEVFINDER_REQUEST_TIMEOUT", "5s")
	v := newTestViper(t)

	// Act
	cfg, err := Load(v)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if cfg.StoreBackend != "sqlite" || !strings.HasSuffix(cfg.StorePath, "state.db") {
		t.Errorf("expected sqlite backend with state.db, got %s %s", cfg.StoreBackend, cfg.StorePath)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.RequestTimeout)
	}
}

// TestLoad_ConfigFile tests loading values from a YAML file.
func TestLoad_ConfigFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "devfinder.yaml")
	content := "port: 9090\nstore: memory\nlog-format: json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	v := NewViper()
	v.SetConfigFile(path)

	// Act
	cfg, err := Load(v)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != 9090 || cfg.StoreBackend != "memory" || cfg.LogFormat != "json" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

// TestLoad_InvalidPort tests that an out-of-range port is rejected.
func TestLoad_InvalidPort(t *testing.T) {
	// Arrange
	v := newTestViper(t)
	v.Set(KeyPort, 70000)

	// Act
	_, err := Load(v)

	// Assert
	if err == nil {
		t.Fatal("expected error for invalid port, got nil")
	}
}

// TestValidate_UnknownBackend tests backend validation.
func TestValidate_UnknownBackend(t *testing.T) {
	// Arrange
	cfg := &Config{Port: 8080, RequestTimeout: time.Second, RefreshIntervalMS: 1000, StoreBackend: "redis"}

	// Act
	err := cfg.Validate()

	// Assert
	if err == nil || !strings.Contains(err.Error(), "redis") {
		t.Errorf("expected backend error, got %v", err)
	}
}

// TestMarshal_RoundTrip tests that saved YAML loads back into the same config.
func TestMarshal_RoundTrip(t *testing.T) {
	// Arrange
	cfg := &Config{
		Port:              8181,
		GitHubURL:         "https://ghe.example.com/api/v3",
		RequestTimeout:    10 * time.Second,
		StoreBackend:      "sqlite",
		StorePath:         filepath.Join(t.TempDir(), "state.db"),
		RefreshIntervalMS: 500,
		LogLevel:          "debug",
		LogFormat:         "console",
	}
	path := filepath.Join(t.TempDir(), "conf", "devfinder.yaml")

	// Act
	if err := Save(cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	v := NewViper()
	v.SetConfigFile(path)
	loaded, err := Load(v)

	// Assert
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", *cfg, *loaded)
	}
}

// TestMarshal_DurationAsString tests that durations are written human-readable.
func TestMarshal_DurationAsString(t *testing.T) {
	// Arrange
	cfg := &Config{RequestTimeout: 30 * time.Second}

	// Act
	data, err := Marshal(cfg)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if raw["request-timeout"] != "30s" {
		t.Errorf("expected request-timeout '30s', got %v", raw["request-timeout"])
	}
}

// TestLoadDotEnv_MissingFileIgnored tests that an absent .env is not an error.
func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	// Act
	err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

// TestLoadDotEnv_SetsVariables tests that .env values reach viper.
func TestLoadDotEnv_SetsVariables(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DEVFINDER_REFRESH_INTERVAL_MS=250\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv("DEVFINDER_REFRESH_INTERVAL_MS", "")
	os.Unsetenv("DEVFINDER_REFRESH_INTERVAL_MS")

	// Act
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg, err := Load(newTestViper(t))

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.RefreshIntervalMS != 250 {
		t.Errorf("expected refresh interval 250, got %d", cfg.RefreshIntervalMS)
	}
}

package cli

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vilaca/devfinder/internal/api"
	"github.com/vilaca/devfinder/internal/api/github"
	"github.com/vilaca/devfinder/internal/config"
	"github.com/vilaca/devfinder/internal/dashboard"
	"github.com/vilaca/devfinder/internal/logging"
	"github.com/vilaca/devfinder/internal/lookup"
	"github.com/vilaca/devfinder/internal/metrics"
	"github.com/vilaca/devfinder/internal/store"
	"github.com/vilaca/devfinder/internal/theme"
)

// components is the object graph shared by all frontends.
type components struct {
	logger   logging.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	store    store.Store
	theme    *theme.Controller
	fetcher  *lookup.Fetcher
}

// buildComponents wires up all dependencies.
// This is the composition root where all dependencies are created and injected.
func buildComponents(ctx context.Context, cfg *config.Config, logger logging.Logger) (*components, error) {
	registry := metrics.NewRegistry()
	m := metrics.New(registry)

	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
	}
	githubClient := github.NewClient(api.ClientConfig{
		BaseURL: cfg.GitHubURL,
	}, httpClient)
	client := api.NewInstrumentedClient(githubClient, m)

	st, err := store.Open(cfg.StoreBackend, cfg.StorePath, logger)
	if err != nil {
		return nil, err
	}

	return &components{
		logger:   logger,
		registry: registry,
		metrics:  m,
		store:    st,
		theme:    theme.NewController(ctx, st, logger),
		fetcher:  lookup.NewFetcher(client, lookup.NewSession(), logger, m),
	}, nil
}

// Close stops in-flight fetches and closes the store.
func (c *components) Close() {
	c.fetcher.Close()
	if err := c.store.Close(); err != nil {
		c.logger.Printf("[Store] Failed to close: %v", err)
	}
}

// buildServer returns the configured HTTP handler.
func buildServer(cfg *config.Config, c *components) http.Handler {
	handler := dashboard.NewHandler(dashboard.HandlerConfig{
		Renderer:          dashboard.NewHTMLRenderer(),
		Logger:            c.logger,
		Dispatcher:        c.fetcher,
		State:             c.fetcher.Session(),
		Theme:             c.theme,
		Metrics:           c.metrics,
		Gatherer:          c.registry,
		UIRefreshInterval: cfg.RefreshIntervalMS,
	})
	return handler.Routes()
}

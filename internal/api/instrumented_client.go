package api

import (
	"context"
	"errors"
	"time"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/metrics"
)

// InstrumentedClient wraps a ProfileClient with Prometheus instrumentation.
// Decorator: adds metrics without modifying the underlying client.
type InstrumentedClient struct {
	client  ProfileClient
	metrics *metrics.Metrics
}

// NewInstrumentedClient creates a new instrumented client wrapper.
func NewInstrumentedClient(client ProfileClient, m *metrics.Metrics) *InstrumentedClient {
	return &InstrumentedClient{
		client:  client,
		metrics: m,
	}
}

// GetUser retrieves a profile and records the outcome and latency.
func (c *InstrumentedClient) GetUser(ctx context.Context, username string) (*domain.Profile, error) {
	start := time.Now()
	profile, err := c.client.GetUser(ctx, username)
	c.metrics.LookupDuration.Observe(time.Since(start).Seconds())
	c.metrics.Lookups.WithLabelValues(outcome(err)).Inc()

	return profile, err
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	var lookupErr *domain.LookupError
	if errors.As(err, &lookupErr) && lookupErr.Kind == domain.ErrorKindNotFound {
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeTransport
}

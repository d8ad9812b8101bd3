package api

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/metrics"
)

// mockProfileClient is a test double for ProfileClient.
type mockProfileClient struct {
	getUserFunc func(ctx context.Context, username string) (*domain.Profile, error)
}

func (m *mockProfileClient) GetUser(ctx context.Context, username string) (*domain.Profile, error) {
	return m.getUserFunc(ctx, username)
}

// TestInstrumentedClient_CountsOutcomes tests that each outcome increments its own counter.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestInstrumentedClient_CountsOutcomes(t *testing.T) {
	// Arrange
	results := map[string]error{
		"octocat": nil,
		"ghost":   &domain.LookupError{Kind: domain.ErrorKindNotFound},
		"offline": &domain.LookupError{Kind: domain.ErrorKindTransport, Err: errors.New("dial tcp")},
	}
	mock := &mockProfileClient{
		getUserFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			if err := results[username]; err != nil {
				return nil, err
			}
			return &domain.Profile{Login: username}, nil
		},
	}
	m := metrics.NewNop()
	client := NewInstrumentedClient(mock, m)

	// Act
	profile, err := client.GetUser(context.Background(), "octocat")
	client.GetUser(context.Background(), "ghost")
	client.GetUser(context.Background(), "offline")
	client.GetUser(context.Background(), "offline")

	// Assert
	if err != nil || profile.Login != "octocat" {
		t.Fatalf("expected passthrough of profile, got %+v, %v", profile, err)
	}
	if got := testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.OutcomeSuccess)); got != 1 {
		t.Errorf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.OutcomeNotFound)); got != 1 {
		t.Errorf("expected 1 not_found, got %v", got)
	}
	if got := testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.OutcomeTransport)); got != 2 {
		t.Errorf("expected 2 transport, got %v", got)
	}
}

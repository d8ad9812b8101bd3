package lookup

import (
	"context"
	"sync"

	"github.com/vilaca/devfinder/internal/api"
	"github.com/vilaca/devfinder/internal/metrics"
)

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Fetcher runs the fetches dispatched through a Session.
// Starting a fetch cancels the previous in-flight one.
type Fetcher struct {
	client  api.ProfileClient
	session *Session
	logger  Logger
	metrics *metrics.Metrics

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu        sync.Mutex
	cancel    context.CancelFunc
	cancelSeq uint64
	inflight  sync.WaitGroup
}

// NewFetcher creates a fetcher bound to session.
func NewFetcher(client api.ProfileClient, session *Session, logger Logger, m *metrics.Metrics) *Fetcher {
	baseCtx, baseCancel := context.WithCancel(context.Background())
	return &Fetcher{
		client:     client,
		session:    session,
		logger:     logger,
		metrics:    m,
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
	}
}

// Session returns the session this fetcher drives.
func (f *Fetcher) Session() *Session {
	return f.session
}

// Start submits raw and returns the ticket plus the context the fetch must run under.
// It returns false for blank input.
func (f *Fetcher) Start(parent context.Context, raw string) (Ticket, context.Context, bool) {
	// The sequence and the cancel slot change together: an older Start
	// must never cancel a newer fetch.
	f.mu.Lock()
	ticket, ok := f.session.Submit(raw)
	if !ok {
		f.mu.Unlock()
		return Ticket{}, nil, false
	}

	ctx, cancel := context.WithCancel(parent)
	if f.cancel != nil {
		f.cancel()
	}
	f.cancel = cancel
	f.cancelSeq = ticket.Seq
	f.mu.Unlock()

	f.logger.Printf("[Lookup] Dispatched %q (seq %d)", ticket.Query, ticket.Seq)
	return ticket, ctx, true
}

// Run performs the fetch for ticket and applies its outcome.
// It returns false when the outcome was discarded as superseded.
func (f *Fetcher) Run(ctx context.Context, ticket Ticket) bool {
	defer f.release(ticket)

	profile, err := f.client.GetUser(ctx, ticket.Query)
	if err != nil {
		f.logger.Printf("[Lookup] Fetch for %q (seq %d) failed: %v", ticket.Query, ticket.Seq, err)
	}

	if !f.session.Complete(ticket, profile, err) {
		f.metrics.SupersededLookup.Inc()
		f.logger.Printf("[Lookup] Discarded superseded result for %q (seq %d)", ticket.Query, ticket.Seq)
		return false
	}
	return true
}

// Dispatch starts a fetch in the background and returns immediately.
// It returns false for blank input.
func (f *Fetcher) Dispatch(raw string) (Ticket, bool) {
	ticket, ctx, ok := f.Start(f.baseCtx, raw)
	if !ok {
		return Ticket{}, false
	}

	f.inflight.Add(1)
	go func() {
		defer f.inflight.Done()
		f.Run(ctx, ticket)
	}()

	return ticket, true
}

// Lookup submits raw and fetches synchronously, returning the resulting state.
func (f *Fetcher) Lookup(ctx context.Context, raw string) (Snapshot, bool) {
	ticket, runCtx, ok := f.Start(ctx, raw)
	if !ok {
		return f.session.Snapshot(), false
	}
	f.Run(runCtx, ticket)
	return f.session.Snapshot(), true
}

// Wait blocks until background fetches have finished.
func (f *Fetcher) Wait() {
	f.inflight.Wait()
}

// Close cancels any in-flight fetch and waits for background work.
func (f *Fetcher) Close() {
	f.baseCancel()
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mu.Unlock()
	f.Wait()
}

// release cancels the context of ticket unless a newer fetch owns the slot.
func (f *Fetcher) release(ticket Ticket) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil && f.cancelSeq == ticket.Seq {
		f.cancel()
		f.cancel = nil
	}
}

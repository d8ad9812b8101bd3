package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vilaca/devfinder/internal/lookup"
	"github.com/vilaca/devfinder/internal/metrics"
	"github.com/vilaca/devfinder/internal/profileview"
	"github.com/vilaca/devfinder/internal/theme"
)

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Dispatcher starts background lookups.
type Dispatcher interface {
	Dispatch(raw string) (lookup.Ticket, bool)
}

// StateSource exposes the current lookup state.
type StateSource interface {
	Snapshot() lookup.Snapshot
}

// ThemeController exposes and flips the display mode.
type ThemeController interface {
	Mode() theme.Mode
	Toggle(ctx context.Context) (bool, error)
}

// Handler handles HTTP requests for the widget.
// Each handler method has a single responsibility.
type Handler struct {
	renderer          Renderer
	logger            Logger
	dispatcher        Dispatcher
	state             StateSource
	theme             ThemeController
	metrics           *metrics.Metrics
	gatherer          prometheus.Gatherer
	uiRefreshInterval int
}

// HandlerConfig holds configuration for creating a new Handler
type HandlerConfig struct {
	Renderer          Renderer
	Logger            Logger
	Dispatcher        Dispatcher
	State             StateSource
	Theme             ThemeController
	Metrics           *metrics.Metrics
	Gatherer          prometheus.Gatherer // nil disables /metrics
	UIRefreshInterval int                 // milliseconds between reloads while loading
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		renderer:          cfg.Renderer,
		logger:            cfg.Logger,
		dispatcher:        cfg.Dispatcher,
		state:             cfg.State,
		theme:             cfg.Theme,
		metrics:           cfg.Metrics,
		gatherer:          cfg.Gatherer,
		uiRefreshInterval: cfg.UIRefreshInterval,
	}
}

// Routes returns the router with all HTTP routes registered.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", h.counted("index", h.handleIndex))
	r.Post("/search", h.counted("search", h.handleSearch))
	r.Post("/theme", h.counted("theme", h.handleTheme))
	r.Get("/api/state", h.counted("state", h.handleState))
	r.Get("/api/health", h.handleHealth)

	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// counted increments the per-route request counter before serving.
func (h *Handler) counted(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.metrics.HTTPRequests.WithLabelValues(route).Inc()
		next(w, r)
	}
}

// handleIndex serves the widget page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	view := profileview.Build(h.theme.Mode(), h.state.Snapshot())
	if err := h.renderer.RenderPage(w, view, h.uiRefreshInterval); err != nil {
		h.logger.Printf("failed to render page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleSearch commits the submitted username and starts the lookup.
// Blank submissions leave the state untouched.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	raw := r.PostFormValue("username")
	if ticket, ok := h.dispatcher.Dispatch(raw); ok {
		h.logger.Printf("[Search] Committed %q (seq %d)", ticket.Query, ticket.Seq)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleTheme flips the display mode.
func (h *Handler) handleTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := h.theme.Toggle(r.Context())
	if err != nil {
		// The in-memory mode still flipped; only persistence failed.
		h.logger.Printf("[Theme] toggle not persisted: %v", err)
	}
	h.metrics.ThemeToggles.Inc()
	h.logger.Printf("[Theme] Switched to %s mode", theme.ModeFor(dark))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleState serves the current state as JSON.
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	if err := h.renderer.RenderState(w, h.theme.Mode(), h.state.Snapshot()); err != nil {
		h.logger.Printf("failed to render state: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleHealth serves the health check endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.renderer.RenderHealth(w); err != nil {
		h.logger.Printf("failed to render health: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

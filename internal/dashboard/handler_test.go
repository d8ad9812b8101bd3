package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/lookup"
	"github.com/vilaca/devfinder/internal/metrics"
	"github.com/vilaca/devfinder/internal/profileview"
	"github.com/vilaca/devfinder/internal/store"
	"github.com/vilaca/devfinder/internal/theme"
)

// mockRenderer is a test double for Renderer.
type mockRenderer struct {
	pageErr   error
	healthErr error
	stateErr  error
}

func (m *mockRenderer) RenderPage(w io.Writer, view profileview.View, refreshMS int) error {
	if m.pageErr != nil {
		return m.pageErr
	}
	_, err := w.Write([]byte("mock page"))
	return err
}

func (m *mockRenderer) RenderHealth(w io.Writer) error {
	if m.healthErr != nil {
		return m.healthErr
	}
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

func (m *mockRenderer) RenderState(w io.Writer, mode theme.Mode, snap lookup.Snapshot) error {
	if m.stateErr != nil {
		return m.stateErr
	}
	_, err := w.Write([]byte(`{}`))
	return err
}

// mockLogger is a test double for Logger.
type mockLogger struct {
	messages []string
}

func (m *mockLogger) Printf(format string, v ...interface{}) {
	m.messages = append(m.messages, format)
}

// mockProfileClient is a test double for api.ProfileClient.
type mockProfileClient struct {
	getUserFunc func(ctx context.Context, username string) (*domain.Profile, error)
}

func (m *mockProfileClient) GetUser(ctx context.Context, username string) (*domain.Profile, error) {
	return m.getUserFunc(ctx, username)
}

// testApp wires a handler over real lookup and theme components.
type testApp struct {
	handler  http.Handler
	fetcher  *lookup.Fetcher
	store    *store.MemoryStore
	requests []string
}

func newTestApp(t *testing.T, renderer Renderer) *testApp {
	t.Helper()

	app := &testApp{store: store.NewMemoryStore()}
	client := &mockProfileClient{
		getUserFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			app.requests = append(app.requests, username)
			if username == "octocat" {
				return &domain.Profile{Login: "octocat", Name: "The Octocat", PublicRepos: 8, Followers: 4000}, nil
			}
			return nil, &domain.LookupError{Kind: domain.ErrorKindNotFound}
		},
	}

	logger := &mockLogger{}
	m := metrics.New(prometheus.NewRegistry())
	app.fetcher = lookup.NewFetcher(client, lookup.NewSession(), logger, m)
	t.Cleanup(app.fetcher.Close)

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "devfinder_test_total", Help: "test"}))

	app.handler = NewHandler(HandlerConfig{
		Renderer:          renderer,
		Logger:            logger,
		Dispatcher:        app.fetcher,
		State:             app.fetcher.Session(),
		Theme:             theme.NewController(context.Background(), app.store, logger),
		Metrics:           m,
		Gatherer:          registry,
		UIRefreshInterval: 1000,
	}).Routes()

	return app
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *testApp) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *testApp) search(username string) *httptest.ResponseRecorder {
	w := a.post("/search", url.Values{"username": {username}})
	a.fetcher.Wait()
	return w
}

// TestHandleHealth tests the health check endpoint.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestHandleHealth(t *testing.T) {
	// Arrange
	app := newTestApp(t, NewHTMLRenderer())

	// Act
	w := app.get("/api/health")

	// Assert
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `{"status":"ok"}` {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

// TestHandleIndex_NoQuery tests the initial page.
func TestHandleIndex_NoQuery(t *testing.T) {
	// Arrange
	app := newTestApp(t, NewHTMLRenderer())

	// Act
	w := app.get("/")

	// Assert
	body := w.Body.String()
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(body, `data-theme="light"`) {
		t.Error("expected light theme by default")
	}
	if strings.Contains(body, `id="profile"`) || strings.Contains(body, "No results") {
		t.Error("expected no card and no marker before any search")
	}
}

// TestHandleSearch_Octocat tests the successful lookup scenario end to end.
func TestHandleSearch_Octocat(t *testing.T) {
	// Arrange
	app := newTestApp(t, NewHTMLRenderer())

	// Act
	w := app.search("octocat")
	page := app.get("/").Body.String()

	// Assert
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Errorf("expected redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if !strings.Contains(page, "<h3>Repos</h3><p>8</p>") {
		t.Error("expected Repos 8 in rendered stats")
	}
	if !strings.Contains(page, "<h3>Followers</h3><p>4000</p>") {
		t.Error("expected Followers 4000 in rendered stats")
	}
	if !strings.Contains(page, "The Octocat") {
		t.Error("expected display name in page")
	}
}

// TestHandleSearch_BlankIsNoOp tests that whitespace submissions issue no fetch.
func TestHandleSearch_BlankIsNoOp(t *testing.T) {
	// Arrange
	app := newTestApp(t, NewHTMLRenderer())

	// Act
	w := app.search("   ")

	// Assert
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected redirect, got %d", w.Code)
	}
	if len(app.requests) != 0 {
		t.Errorf("expected no fetch, got %v", app.requests)
	}
	if app.fetcher.Session().Snapshot().Committed() {
		t.Error("expected no committed query")
	}
}

// TestHandleSearch_NotFoundKeepsProfile tests the 404 scenario with a previous profile.
func TestHandleSearch_NotFoundKeepsProfile(t *testing.T) {
	// Arrange
	app := newTestApp(t, NewHTMLRenderer())
	app.search("octocat")

	// Act
	app.search("nonexistent-user-zzz")
	page := app.get("/").Body.String()

	// Assert
	if got := app.fetcher.Session().Snapshot().ErrorMessage(); got != "User not found" {
		t.Errorf("expected 'User not found', got %q", got)
	}
	if !strings.Contains(page, "No results") {
		t.Error("expected No results marker")
	}
	if !strings.Contains(page, "@octocat") {
		t.Error("expected previous profile to stay on screen")
	}
}

// TestHandleTheme tests that toggling persists and re-renders in dark mode.
func TestHandleTheme(t *testing.T) {
	// Arrange
	app := newTestApp(t, NewHTMLRenderer())

	// Act
	w := app.post("/theme", url.Values{})
	page := app.get("/").Body.String()

	// Assert
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected redirect, got %d", w.Code)
	}
	stored, err := app.store.Get(context.Background(), domain.ThemePreferenceKey)
	if err != nil || stored != "true" {
		t.Errorf("expected persisted 'true', got %q (%v)", stored, err)
	}
	if !strings.Contains(page, `data-theme="dark"`) {
		t.Error("expected dark theme after toggle")
	}
	if !strings.Contains(page, "LIGHT") {
		t.Error("expected toggle to offer LIGHT")
	}
}

// TestHandleState tests the JSON state endpoint.
func TestHandleState(t *testing.T) {
	// Arrange
	app := newTestApp(t, NewHTMLRenderer())
	app.search("octocat")

	// Act
	w := app.get("/api/state")

	// Assert
	var resp struct {
		Theme   string          `json:"theme"`
		Query   string          `json:"query"`
		Status  string          `json:"status"`
		Profile *domain.Profile `json:"profile"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode state: %v", err)
	}
	if resp.Theme != "light" || resp.Query != "octocat" || resp.Status != "idle" {
		t.Errorf("unexpected state %+v", resp)
	}
	if resp.Profile == nil || resp.Profile.PublicRepos != 8 {
		t.Errorf("expected profile with 8 repos, got %+v", resp.Profile)
	}
}

// TestHandleIndex_RenderError tests that render failures return 500.
func TestHandleIndex_RenderError(t *testing.T) {
	// Arrange
	app := newTestApp(t, &mockRenderer{pageErr: errors.New("render failed")})

	// Act
	w := app.get("/")

	// Assert
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

// TestMetricsEndpoint tests that the gatherer is exposed.
func TestMetricsEndpoint(t *testing.T) {
	// Arrange
	app := newTestApp(t, &mockRenderer{})

	// Act
	w := app.get("/metrics")

	// Assert
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "devfinder_test_total") {
		t.Error("expected registered metric in output")
	}
}

// TestSearchRequiresPost tests that GET /search is not routed.
func TestSearchRequiresPost(t *testing.T) {
	// Arrange
	app := newTestApp(t, &mockRenderer{})

	// Act
	w := app.get("/search?username=octocat")

	// Assert
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if len(app.requests) != 0 {
		t.Error("expected no fetch")
	}
}

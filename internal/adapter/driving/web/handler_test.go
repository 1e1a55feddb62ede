package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tfccofficial/tfcc/internal/application"
	"github.com/tfccofficial/tfcc/internal/domain/model"
)

// --- Mock implementations ---

type mockContentStore struct {
	benchmarks []model.Benchmark
	events     []model.Event
	showcase   []model.ShowcaseImage
	products   []model.Product
	err        error
}

func (m *mockContentStore) ListBenchmarks(_ context.Context) ([]model.Benchmark, error) {
	return m.benchmarks, m.err
}
func (m *mockContentStore) ListEvents(_ context.Context) ([]model.Event, error) {
	return m.events, m.err
}
func (m *mockContentStore) ListShowcase(_ context.Context) ([]model.ShowcaseImage, error) {
	return m.showcase, m.err
}
func (m *mockContentStore) ListProducts(_ context.Context) ([]model.Product, error) {
	return m.products, m.err
}

// --- Test helpers ---

func price(v float64) *float64 { return &v }

func seededStore() *mockContentStore {
	benchmarks := make([]model.Benchmark, 0, 6)
	for i, title := range []string{"Athlete Safety", "Clean Sport", "Transparent Judging", "Financial Disclosure", "Fair Selection", "Grievance Redressal"} {
		benchmarks = append(benchmarks, model.Benchmark{Position: i + 1, Number: "0" + string(rune('1'+i)), Title: title, Description: "Published **standard**."})
	}
	benchmarks[5].ContactEmail = "governance@tfcc.in"

	return &mockContentStore{
		benchmarks: benchmarks,
		events:     []model.Event{{Title: "TFCC Strongman Open", DateLabel: "March 2027", Location: "Mumbai"}},
		showcase:   []model.ShowcaseImage{{ImageURL: "/static/img/showcase-1.svg", Caption: "Atlas stones"}},
		products: []model.Product{
			{Name: "TFCC Athlete Tee", Price: price(1499), Currency: "INR", Category: model.CategoryApparel},
		},
	}
}

func newTestHandler(store *mockContentStore) *Handler {
	svc := application.NewSiteService(store, slog.Default())
	return NewHandler(svc, language.MustParse("en-IN"), slog.Default())
}

func setupMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	RegisterPageRoutes(mux, h)
	return mux
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// htmxGet issues the request the way HTMX does for hx-get.
func htmxGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(htmxRequestHeader, "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestHome(t *testing.T) {
	rec := get(t, setupMux(newTestHandler(seededStore())), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "<title>TFCC | Strongman &amp; Combat Sports</title>")
	assert.Contains(t, body, "TFCC Strongman Open")
	assert.Contains(t, body, "/static/img/event-placeholder.svg", "missing event image falls back")
	assert.Contains(t, body, "₹1,499")
	assert.Contains(t, body, `disabled aria-disabled="true"`)
}

func TestHome_GovernanceStartsCollapsed(t *testing.T) {
	rec := get(t, setupMux(newTestHandler(seededStore())), "/")

	body := rec.Body.String()
	assert.Contains(t, body, `aria-expanded="false"`)
	assert.Contains(t, body, `href="/partials/governance?expanded=false#governance"`)
	assert.NotContains(t, body, "Athlete Safety")
}

func TestHome_EmptyCatalogShowsPlaceholders(t *testing.T) {
	store := seededStore()
	store.products = nil

	rec := get(t, setupMux(newTestHandler(store)), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, placeholderCardCount, strings.Count(rec.Body.String(), "is-placeholder"))
}

func TestHome_StoreError(t *testing.T) {
	rec := get(t, setupMux(newTestHandler(&mockContentStore{err: errors.New("db gone")})), "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHome_UnknownPathNotFound(t *testing.T) {
	rec := get(t, setupMux(newTestHandler(seededStore())), "/some/client/route")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGovernancePanel_Toggle(t *testing.T) {
	mux := setupMux(newTestHandler(seededStore()))

	tests := []struct {
		name         string
		target       string
		wantExpanded bool
	}{
		{name: "fresh panel expands", target: "/partials/governance", wantExpanded: true},
		{name: "collapsed expands", target: "/partials/governance?expanded=false", wantExpanded: true},
		{name: "expanded collapses", target: "/partials/governance?expanded=true", wantExpanded: false},
		{name: "malformed treated as collapsed", target: "/partials/governance?expanded=maybe", wantExpanded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := htmxGet(t, mux, tt.target)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			assert.Equal(t, htmxRequestHeader, rec.Header().Get("Vary"))

			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, `<div id="governance-panel"`), "partial must be the panel only")
			if tt.wantExpanded {
				assert.Contains(t, body, `aria-expanded="true"`)
				assert.Contains(t, body, "Athlete Safety")
				assert.Contains(t, body, "Grievance Redressal")
				assert.Less(t, strings.Index(body, "Athlete Safety"), strings.Index(body, "Grievance Redressal"))
				assert.Contains(t, body, "<strong>standard</strong>")
				assert.Contains(t, body, "mailto:governance@tfcc.in")
			} else {
				assert.Contains(t, body, `aria-expanded="false"`)
				assert.NotContains(t, body, "Athlete Safety")
			}
		})
	}
}

// TestGovernancePanel_RepeatedToggles follows the toggle URL the panel itself
// advertises and checks the state alternates deterministically.
func TestGovernancePanel_RepeatedToggles(t *testing.T) {
	mux := setupMux(newTestHandler(seededStore()))
	target := "/partials/governance?expanded=false"

	for n := 1; n <= 7; n++ {
		body := htmxGet(t, mux, target).Body.String()
		expanded := strings.Contains(body, `aria-expanded="true"`)
		assert.Equal(t, n%2 == 1, expanded, "after %d toggles", n)

		if expanded {
			target = "/partials/governance?expanded=true"
		} else {
			target = "/partials/governance?expanded=false"
		}
		assert.Contains(t, body, `hx-get="`+target+`"`)
	}
}

func TestGovernancePanel_NoBenchmarks(t *testing.T) {
	rec := htmxGet(t, setupMux(newTestHandler(&mockContentStore{})), "/partials/governance")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Without HTMX the toggle is followed as a plain link and must land on a
// whole page showing the panel in its new state.
func TestGovernancePanel_PlainLinkRendersFullPage(t *testing.T) {
	mux := setupMux(newTestHandler(seededStore()))

	tests := []struct {
		name         string
		target       string
		wantExpanded bool
	}{
		{name: "expand", target: "/partials/governance?expanded=false", wantExpanded: true},
		{name: "collapse", target: "/partials/governance?expanded=true", wantExpanded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, mux, tt.target)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, htmxRequestHeader, rec.Header().Get("Vary"))

			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, "<!doctype html>"), "plain link must get the whole document")
			assert.Contains(t, body, "TFCC Strongman Open")
			assert.Contains(t, body, `<section id="governance"`)
			if tt.wantExpanded {
				assert.Contains(t, body, `aria-expanded="true"`)
				assert.Contains(t, body, "Athlete Safety")
				assert.Contains(t, body, `href="/partials/governance?expanded=true#governance"`)
			} else {
				assert.Contains(t, body, `aria-expanded="false"`)
				assert.NotContains(t, body, "Athlete Safety")
			}
		})
	}
}

func TestGovernancePanel_PlainLinkStoreError(t *testing.T) {
	rec := get(t, setupMux(newTestHandler(&mockContentStore{err: errors.New("db gone")})), "/partials/governance")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStaticAssets(t *testing.T) {
	rec := get(t, setupMux(newTestHandler(seededStore())), "/static/css/site.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".btn-cart[disabled]")
}

func TestToProductCardViewModel_AllFieldsAbsent(t *testing.T) {
	card := toProductCardViewModel(model.Product{}, language.MustParse("en-IN"))

	assert.Empty(t, card.Name)
	assert.Empty(t, card.Description)
	assert.Empty(t, card.PriceText)
	assert.Equal(t, fallbackProductImage, card.ImageURL)
	assert.True(t, card.AddToCartDisabled())
}

func TestToProductCardViewModel_InStockPrice(t *testing.T) {
	card := toProductCardViewModel(model.Product{Name: "Tee", Price: price(1499), Currency: "INR", InStock: true}, language.MustParse("en-IN"))

	assert.Equal(t, "₹1,499", card.PriceText)
	assert.False(t, card.AddToCartDisabled())
}

func TestExportSite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")

	require.NoError(t, ExportSite(context.Background(), newTestHandler(seededStore()), out))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "TFCC Strongman Open")

	_, err = os.Stat(filepath.Join(out, "static", "css", "site.css"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "static", "img", "product-placeholder.svg"))
	assert.NoError(t, err)
}

func TestExportSite_RenderError(t *testing.T) {
	out := t.TempDir()

	err := ExportSite(context.Background(), newTestHandler(&mockContentStore{}), out)

	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(out, "index.html"))
	assert.True(t, os.IsNotExist(statErr), "no index.html may be written when rendering fails")
}

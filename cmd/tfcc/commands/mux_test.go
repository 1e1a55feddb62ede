package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	webhandler "github.com/tfccofficial/tfcc/internal/adapter/driving/web"
	"github.com/tfccofficial/tfcc/internal/config"
)

const bundleIndex = `<!doctype html><html><body><div id="root">bundle</div></body></html>`

func setupSite(t *testing.T) *webhandler.Handler {
	t.Helper()

	prev := cfg
	t.Cleanup(func() { cfg = prev })
	cfg = &config.Config{
		ContentDBPath: filepath.Join(t.TempDir(), "content.db"),
		Locale:        language.MustParse("en-IN"),
	}

	db, web, err := openSite(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(db) })

	return web
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_ProductionServesBundleStatic(t *testing.T) {
	bundle := fstest.MapFS{
		"index.html":          {Data: []byte(bundleIndex)},
		"static/css/site.css": {Data: []byte("/* FROM BUNDLE */")},
	}
	router := newRouter(setupSite(t), true, bundle)

	rec := doGet(t, router, "/static/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/* FROM BUNDLE */", rec.Body.String())

	for _, path := range []string{"/", "/events/2027", "/shop"} {
		rec := doGet(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, bundleIndex, rec.Body.String(), path)
	}
}

func TestRouter_ProductionKeepsAPIAndPartials(t *testing.T) {
	router := newRouter(setupSite(t), true, fstest.MapFS{"index.html": {Data: []byte(bundleIndex)}})

	rec := doGet(t, router, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","message":"TFCC Backend is running"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/partials/governance?expanded=false", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Athlete Safety")
}

func TestRouter_DevelopmentRendersLive(t *testing.T) {
	router := newRouter(setupSite(t), false, nil)

	rec := doGet(t, router, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TFCC Strongman Open")

	rec = doGet(t, router, "/static/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".btn-cart[disabled]")

	assert.Equal(t, http.StatusNotFound, doGet(t, router, "/events/2027").Code)
}

// TestRouter_ServesExportedBundle builds the bundle the way `tfcc build` does
// and serves it from disk in production mode.
func TestRouter_ServesExportedBundle(t *testing.T) {
	web := setupSite(t)
	dir := t.TempDir()
	require.NoError(t, webhandler.ExportSite(context.Background(), web, dir))

	router := newRouter(web, true, os.DirFS(dir))

	css, err := os.ReadFile(filepath.Join(dir, "static", "css", "site.css"))
	require.NoError(t, err)

	rec := doGet(t, router, "/static/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(css), rec.Body.String())

	rec = doGet(t, router, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TFCC Strongman Open")
}

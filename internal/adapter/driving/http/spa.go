package httphandler

import (
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// fallbackDocument is the bundle entry point served for client-side routes.
const fallbackDocument = "index.html"

// SPAHandler serves a prebuilt single-page-application bundle. Paths naming a
// regular file in the bundle are served as files; every other path receives
// the bundle's index.html with status 200 so the client-side router can
// interpret it.
type SPAHandler struct {
	fsys   fs.FS
	files  http.Handler
	logger *slog.Logger
}

// NewSPAHandler creates an SPAHandler over the bundle rooted at fsys.
func NewSPAHandler(fsys fs.FS, logger *slog.Logger) *SPAHandler {
	return &SPAHandler{
		fsys:   fsys,
		files:  http.FileServerFS(fsys),
		logger: logger,
	}
}

// RegisterSPARoutes registers the bundle as the catch-all route. More specific
// routes registered on the same mux keep precedence.
func RegisterSPARoutes(mux *http.ServeMux, h *SPAHandler) {
	mux.Handle("GET /", h)
}

// ServeHTTP implements http.Handler.
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")

	if name != "" && name != fallbackDocument {
		if info, err := fs.Stat(h.fsys, name); err == nil && info.Mode().IsRegular() {
			h.files.ServeHTTP(w, r)
			return
		}
	}

	h.serveFallback(w, r)
}

func (h *SPAHandler) serveFallback(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.fsys, fallbackDocument)
	if err != nil {
		h.logger.Error("failed to read fallback document", "file", fallbackDocument, "error", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}

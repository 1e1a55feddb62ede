package web

import (
	"io/fs"
	"net/http"

	vm "github.com/tfccofficial/tfcc/internal/adapter/driving/web/viewmodel"
)

// RegisterRoutes registers the HTML partials the page swaps in. They are
// served in every mode.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET "+vm.GovernancePartialPath, h.GovernancePanel)
}

// RegisterPageRoutes registers the live-rendered home page and the embedded
// static assets it links to. Production mode serves both from the exported
// bundle instead and does not register them.
func RegisterPageRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.Home)
}

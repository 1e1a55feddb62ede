package commands

import (
	"io/fs"
	"log/slog"
	"net/http"

	httphandler "github.com/tfccofficial/tfcc/internal/adapter/driving/http"
	webhandler "github.com/tfccofficial/tfcc/internal/adapter/driving/web"
)

// newRouter assembles the request router. In production the bundle in
// bundleFS answers every path the API and partial routes do not, including
// /static/*. Otherwise the page is rendered live with embedded assets.
func newRouter(web *webhandler.Handler, production bool, bundleFS fs.FS) http.Handler {
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(slog.Default()))
	webhandler.RegisterRoutes(mux, web)

	if production {
		httphandler.RegisterSPARoutes(mux, httphandler.NewSPAHandler(bundleFS, slog.Default()))
	} else {
		webhandler.RegisterPageRoutes(mux, web)
	}

	return httphandler.ApplyMiddleware(mux, slog.Default())
}

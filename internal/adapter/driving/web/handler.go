// Package web implements the HTML driving adapter using templ components.
package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/text/language"

	"github.com/tfccofficial/tfcc/internal/adapter/driving/web/templates"
	"github.com/tfccofficial/tfcc/internal/adapter/driving/web/templates/components"
	"github.com/tfccofficial/tfcc/internal/adapter/driving/web/templates/pages"
	vm "github.com/tfccofficial/tfcc/internal/adapter/driving/web/viewmodel"
	"github.com/tfccofficial/tfcc/internal/application"
	"github.com/tfccofficial/tfcc/internal/domain/port/driven"
)

// htmxRequestHeader is set to "true" on every request HTMX issues.
const htmxRequestHeader = "HX-Request"

// Handler is the web driving adapter that serves HTML via templ components.
type Handler struct {
	siteSvc *application.SiteService
	locale  language.Tag
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. locale drives
// price formatting.
func NewHandler(siteSvc *application.SiteService, locale language.Tag, logger *slog.Logger) *Handler {
	return &Handler{
		siteSvc: siteSvc,
		locale:  locale,
		logger:  logger,
	}
}

// Home renders the full site page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.RenderHome(r.Context(), w); err != nil {
		h.logger.Error("failed to render home page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RenderHome writes the full home page document to w with the governance
// panel collapsed. It is shared by the Home handler and the static bundle
// export.
func (h *Handler) RenderHome(ctx context.Context, w io.Writer) error {
	return h.renderPage(ctx, w, vm.DisclosurePanel{})
}

func (h *Handler) renderPage(ctx context.Context, w io.Writer, panel vm.DisclosurePanel) error {
	content, err := h.siteSvc.Load(ctx)
	if err != nil {
		return err
	}

	page := toHomeViewModel(content, panel, h.locale)
	return templates.Layout(page.Title, pages.Home(page)).Render(ctx, w)
}

// GovernancePanel renders the benchmark disclosure panel in the state
// opposite to the one given by the expanded query parameter. A missing or
// malformed parameter means the caller holds a fresh, collapsed panel.
//
// HTMX requests get the panel fragment to swap in place. Any other request
// followed the toggle's plain link, so it gets the whole page with the
// toggled panel.
func (h *Handler) GovernancePanel(w http.ResponseWriter, r *http.Request) {
	expanded, err := strconv.ParseBool(r.URL.Query().Get("expanded"))
	if err != nil {
		expanded = false
	}

	var panel vm.DisclosurePanel
	if expanded {
		panel.Toggle()
	}
	panel.Toggle()

	w.Header().Set("Vary", htmxRequestHeader)

	if r.Header.Get(htmxRequestHeader) != "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := h.renderPage(r.Context(), w, panel); err != nil {
			h.logger.Error("failed to render home page", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	benchmarks, err := h.siteSvc.Benchmarks(r.Context())
	if err != nil {
		h.logger.Error("failed to load benchmarks", "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, driven.ErrContentNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	component := components.GovernancePanel(toGovernanceViewModel(benchmarks, panel))
	if err := component.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render governance panel", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ptkral/luxmon/nodes"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageHandler serves the two HTML views: the fleet map and the per-node
// graph page. Pure templating over the static descriptor list; all data on
// these pages is fetched client-side from the JSON endpoints.
type PageHandler struct {
	fleet []nodes.Node
}

func NewPageHandler(fleet []nodes.Node) *PageHandler {
	return &PageHandler{fleet: fleet}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", h.fleet)
}

// Graph handles GET /graph/{node}
func (h *PageHandler) Graph(w http.ResponseWriter, r *http.Request) {
	h.render(w, "graph.html", r.PathValue("node"))
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
	}
}

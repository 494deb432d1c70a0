package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var pageFS embed.FS

// PageRenderer renders the server-side HTML pages from embedded templates.
// Each page template defines a "content" block executed inside the shared
// layout.
type PageRenderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewPageRenderer parses every page template against the shared layout.
func NewPageRenderer(logger *slog.Logger) (*PageRenderer, error) {
	names, err := fs.Glob(pageFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob page templates: %w", err)
	}
	pages := make(map[string]*template.Template)
	for _, name := range names {
		base := strings.TrimSuffix(strings.TrimPrefix(name, "templates/"), ".html")
		if base == "layout" {
			continue
		}
		t, err := template.ParseFS(pageFS, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", name, err)
		}
		pages[base] = t
	}
	return &PageRenderer{pages: pages, logger: logger}, nil
}

// Render writes the named page with the given status code. The data map is
// the template context; pages expect at least a "Titulo" entry.
func (p *PageRenderer) Render(w http.ResponseWriter, statusCode int, page string, data map[string]any) {
	t, ok := p.pages[page]
	if !ok {
		p.logger.Error("unknown page template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		p.logger.Error("executing page template", "page", page, "error", err)
	}
}

// Package handlers contains the dashboard pages and actions. Every page is
// one GET handler rendering a template over data fetched from the core
// platform; every action is one POST handler that calls one endpoint,
// records the outcome and redirects with a flash notification.
package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"github.com/moncredit/admin-dashboard/internal/format"
	"github.com/moncredit/admin-dashboard/internal/models"
)

// pageData is the envelope every template receives.
type pageData struct {
	Title  string
	Active string // nav highlight
	Admin  *models.Admin
	Flash  *Flash
	Data   any
}

type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page template against the shared layout.
func NewRenderer(dir string) (*Renderer, error) {
	layout := filepath.Join(dir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(dir, "pages", "*.html"))
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(format.FuncMap()).ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		templates[filepath.Base(page)] = t
	}

	return &Renderer{templates: templates}, nil
}

func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data *pageData) {
	t, ok := rn.templates[name]
	if !ok {
		log.Printf("[RENDER] unknown template %q", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template failure never produces a
	// half-written page.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Printf("[RENDER] template %q failed: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

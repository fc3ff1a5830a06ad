// Package view renders the server-side HTML pages. Templates are embedded
// into the binary and parsed once at startup.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes named page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page with the given status. A template execution
// failure after the header is written can only be logged.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] render template %s: %v", name, err)
	}
}

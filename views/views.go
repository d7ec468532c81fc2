// Package views renders the catalog's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Engine is a fiber.Views implementation over html/template.
type Engine struct {
	mu        sync.RWMutex
	templates *template.Template
}

// New returns an engine; templates are parsed on Load.
func New() *Engine {
	return &Engine{}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"kingdoms": models.Kingdoms,
	}
}

// Load parses every embedded template. Fiber calls it when the app is created.
func (e *Engine) Load() error {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	e.mu.Lock()
	e.templates = tmpl
	e.mu.Unlock()
	return nil
}

// Render executes the named template into w. When a layout is given, the
// page is rendered first and handed to the layout as .Embed.
func (e *Engine) Render(w io.Writer, name string, data interface{}, layout ...string) error {
	e.mu.RLock()
	tmpl := e.templates
	e.mu.RUnlock()
	if tmpl == nil {
		if err := e.Load(); err != nil {
			return err
		}
		return e.Render(w, name, data, layout...)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	if len(layout) == 0 || layout[0] == "" {
		_, err := buf.WriteTo(w)
		return err
	}

	page := struct {
		Embed template.HTML
		Data  interface{}
	}{template.HTML(buf.String()), data}

	var out bytes.Buffer
	if err := tmpl.ExecuteTemplate(&out, layout[0], page); err != nil {
		return fmt.Errorf("executing layout %s: %w", layout[0], err)
	}
	_, err := out.WriteTo(w)
	return err
}

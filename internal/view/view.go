// Package view renderiza las páginas HTML. Las plantillas van embebidas en
// el binario; cada página se compone con layout.html.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"microdose-web/internal/platform/logger"
)

//go:embed templates/*.html
var tplFS embed.FS

// Data es el sobre común de todas las páginas.
type Data struct {
	Title     string
	Authed    bool
	Email     string
	Flash     *Flash
	ActiveTab string // tab de comunidad activo, si aplica
	Content   any
}

type Renderer struct {
	log   logger.Logger
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("Jan 2, 2006")
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("Jan 2, 2006 15:04")
	},
	"percent": func(f float64) string {
		return fmt.Sprintf("%.0f%%", f*100)
	},
	// misma forma YYYY-MM-DD que usan las rutas /daily/{date}; se formatea
	// acá mismo para no colgar view de ningún paquete de dominio
	"daykey": func(t time.Time) string {
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	},
}

// New parsea todas las páginas al arrancar; un template roto falla acá y no
// en medio de un request.
func New(log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Nop()
	}

	entries, err := fs.ReadDir(tplFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("view: read templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, e := range entries {
		name := e.Name()
		if name == "layout.html" {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(tplFS,
			"templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = t
	}

	return &Renderer{log: log, pages: pages}, nil
}

// Render escribe la página. Si el template falla a mitad de camino ya se
// escribieron headers; solo queda loguear.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, d Data) {
	t, ok := r.pages[page]
	if !ok {
		r.log.Error("unknown page template", map[string]any{"page": page})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", d); err != nil {
		r.log.Error("render failed", map[string]any{"page": page, "err": err.Error()})
	}
}

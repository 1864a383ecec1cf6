// Package page renders the deployment status page.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/hng13/deploypage/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes one variant's template against the current time.
// It holds no mutable state and is safe for concurrent use.
type Renderer struct {
	variant domain.Variant
	tmpl    *template.Template
	clock   domain.Clock
}

// NewRenderer parses the template for v once. A nil clock falls back to
// the system clock.
func NewRenderer(v domain.Variant, clock domain.Clock) (*Renderer, error) {
	if !v.IsValid() {
		return nil, domain.ErrUnknownVariant
	}

	tmpl, err := template.ParseFS(templateFS, "templates/"+string(v)+".html")
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", v, err)
	}

	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Renderer{variant: v, tmpl: tmpl, clock: clock}, nil
}

// Render writes the page with a freshly read timestamp.
func (r *Renderer) Render(w io.Writer) error {
	return r.tmpl.Execute(w, domain.NewPage(r.variant, r.clock.Now()))
}

func (r *Renderer) Variant() domain.Variant { return r.variant }

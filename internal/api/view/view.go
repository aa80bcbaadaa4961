// Package view holds the console's server-rendered templates. Markup is
// deliberately plain; the console's job is gating and listing, not styling.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer satisfies echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render satisfies the echo.Renderer interface.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t := r.templates.Lookup(name)
	if t == nil {
		return fmt.Errorf("view: unknown template %q", name)
	}
	return t.Execute(w, data)
}

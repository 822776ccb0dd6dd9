// Package web renders the admin pages from embedded html templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"usersadmin/internal/model"
	"usersadmin/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names understood by Renderer.
const (
	PageList = "list.html"
	PageForm = "form.html"
)

var funcs = template.FuncMap{
	"statusLabel": func(code string) string { return model.StatusLabel(model.UserStatus(code)) },
	"statuses":    model.Statuses,
	"editURL":     view.EditURL,
	"columns":     view.Columns,
}

// Renderer implements echo.Renderer over the embedded pages.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageList, PageForm} {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render writes the named page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

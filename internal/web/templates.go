package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"

	"docugroup/internal/ui"
)

//go:embed tpl/*.tmpl
var tplFS embed.FS

// TailwindCDN serves the utility classes the components are styled with.
const TailwindCDN = "https://cdn.tailwindcss.com"

type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	t := template.New("root").Funcs(sprig.FuncMap())
	if _, err := t.ParseFS(tplFS, "tpl/*.tmpl"); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &Renderer{tpl: t}, nil
}

func (r *Renderer) Render(w io.Writer, page Page) error {
	return r.tpl.ExecuteTemplate(w, "base", page)
}

// Document renders the page shell inside the HTML layout. The result only
// depends on site, so callers may render once and cache the bytes.
func (r *Renderer) Document(site Site) ([]byte, error) {
	var body bytes.Buffer
	if err := ui.Shell().Render(&body); err != nil {
		return nil, fmt.Errorf("render shell: %w", err)
	}
	page := Page{
		Title:   site.Title,
		Lang:    site.Lang,
		Favicon: "/static/favicon.svg",
		Scripts: []string{TailwindCDN},
		Body:    template.HTML(body.String()),
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return nil, fmt.Errorf("render layout: %w", err)
	}
	return buf.Bytes(), nil
}

package web_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docugroup/internal/ui"
	"docugroup/internal/web"
)

func newRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer()
	require.NoError(t, err)
	return r
}

func TestDocumentWrapsShell(t *testing.T) {
	r := newRenderer(t)

	doc, err := r.Document(web.Site{Title: "DocuGroup", Lang: "es"})
	require.NoError(t, err)
	out := string(doc)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<html lang="es">`)
	assert.Contains(t, out, "<title>DocuGroup</title>")
	assert.Contains(t, out, `<script src="`+web.TailwindCDN+`"></script>`)
	assert.Contains(t, out, `href="/static/favicon.svg"`)
	assert.NotContains(t, out, `rel="stylesheet"`, "styling comes from the Tailwind script only")

	var shell strings.Builder
	require.NoError(t, ui.Shell().Render(&shell))
	assert.Contains(t, out, shell.String(), "body must not be re-escaped")
	assert.Contains(t, out, ui.HomeHeadline)
}

func TestDocumentDefaults(t *testing.T) {
	r := newRenderer(t)

	doc, err := r.Document(web.Site{Title: "   "})
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<title>DocuGroup</title>")
	assert.Contains(t, string(doc), `<html lang="es">`)
}

func TestDocumentIsDeterministic(t *testing.T) {
	r := newRenderer(t)
	site := web.Site{Title: "DocuGroup", Lang: "es"}

	a, err := r.Document(site)
	require.NoError(t, err)
	b, err := r.Document(site)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))

	c, err := newRenderer(t).Document(site)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, c))
}

func TestRenderEscapesTitle(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, web.Page{Title: "<b>x</b>"}))
	assert.Contains(t, buf.String(), "<title>&lt;b&gt;x&lt;/b&gt;</title>")
	assert.NotContains(t, buf.String(), "<link rel=\"icon\"")
}

package web

import "html/template"

// Site holds the document-level settings. They never reach the components.
type Site struct {
	Title string
	Lang  string
}

// Page is the data passed to the base layout.
type Page struct {
	Title   string
	Lang    string
	Favicon string
	Scripts []string
	Body    template.HTML
}

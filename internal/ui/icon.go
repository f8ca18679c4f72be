package ui

import (
	g "maragu.dev/gomponents"
)

// fileTextPaths is the path data of the lucide "file-text" glyph.
var fileTextPaths = [...]string{
	"M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z",
	"M14 2v4a2 2 0 0 0 2 2h4",
	"M10 9H8",
	"M16 13H8",
	"M16 17H8",
}

// FileTextIcon renders the document glyph used inside the brand tile.
func FileTextIcon(class string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("class", class),
		g.Map(fileTextPaths[:], func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		}),
	)
}

// Package ui holds the DocuGroup view components. Every component is a pure
// function of no input that returns a gomponents node tree; rendering the
// same component twice always yields the same bytes.
package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BrandName is the product name shown next to the logo tile.
const BrandName = "DocuGroup"

// BrandSize selects one of the two fixed brand mark styles.
type BrandSize int

const (
	BrandHeader BrandSize = iota
	BrandFooter
)

type brandStyle struct {
	tile string
	icon string
	name string
}

func (s BrandSize) style() brandStyle {
	if s == BrandFooter {
		return brandStyle{
			tile: "w-8 h-8 rounded-lg flex items-center justify-center bg-blue-600",
			icon: "w-5 h-5 text-white",
			name: "text-lg font-semibold text-white",
		}
	}
	return brandStyle{
		tile: "w-10 h-10 rounded-lg flex items-center justify-center bg-gradient-to-br from-sky-500 to-cyan-400",
		icon: "w-6 h-6 text-white",
		name: "text-xl font-bold text-gray-900",
	}
}

// BrandMark renders the logo tile followed by the brand name.
func BrandMark(size BrandSize) g.Node {
	st := size.style()
	return h.Div(
		h.Class("flex items-center gap-2"),
		h.Div(
			h.Class(st.tile),
			FileTextIcon(st.icon),
		),
		h.Span(h.Class(st.name), g.Text(BrandName)),
	)
}

package ui

import (
	"slices"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var navItems = [...]string{
	"Integrantes",
	"Mis pagos",
	"Documentos",
	"Contactos",
	"Uso de la app",
}

type navAction struct {
	Label string
	Class string
}

// Sign in and Register have no handler and no target.
var navActions = [...]navAction{
	{
		Label: "Sign in",
		Class: "px-4 py-2 rounded-lg text-gray-700 hover:bg-gray-100 transition-colors",
	},
	{
		Label: "Register",
		Class: "px-4 py-2 rounded-lg text-white bg-gradient-to-r from-sky-500 to-cyan-400 hover:shadow-lg hover:scale-105 transition-all",
	},
}

// NavItems returns the navigation menu labels in display order.
func NavItems() []string { return slices.Clone(navItems[:]) }

// NavActions returns the labels of the header action buttons.
func NavActions() []string {
	out := make([]string, 0, len(navActions))
	for _, a := range navActions {
		out = append(out, a.Label)
	}
	return out
}

// Navbar renders the sticky page header.
func Navbar() g.Node {
	return h.Nav(
		h.Class("sticky top-0 z-50 bg-white shadow-sm"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-6 py-4"),
			h.Div(
				h.Class("flex items-center justify-between"),

				BrandMark(BrandHeader),

				h.Div(
					h.Class("flex items-center gap-8"),
					g.Map(navItems[:], func(item string) g.Node {
						return h.A(
							h.Href("#"),
							h.Class("text-gray-600 hover:text-sky-600 transition-colors"),
							g.Text(item),
						)
					}),
				),

				h.Div(
					h.Class("flex items-center gap-3"),
					g.Map(navActions[:], func(a navAction) g.Node {
						return h.Button(
							h.Type("button"),
							h.Class(a.Class),
							g.Text(a.Label),
						)
					}),
				),
			),
		),
	)
}

package ui

import (
	"slices"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const Copyright = "© 2026 DocuGroup"

var footerLinks = [...]string{
	"Privacidad",
	"Términos",
	"Soporte",
	"Contacto",
}

// FooterLinks returns the footer link labels in display order.
func FooterLinks() []string { return slices.Clone(footerLinks[:]) }

// Footer renders the closing bar.
func Footer() g.Node {
	return h.Footer(
		h.Class("bg-gray-900 text-gray-300 mt-auto"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-6 py-8"),
			h.Div(
				h.Class("flex items-center justify-between"),

				BrandMark(BrandFooter),

				h.Div(
					h.Class("flex items-center gap-6"),
					g.Map(footerLinks[:], func(link string) g.Node {
						return h.A(
							h.Href("#"),
							h.Class("hover:text-white transition-colors"),
							g.Text(link),
						)
					}),
				),

				h.Div(h.Class("text-sm"), g.Text(Copyright)),
			),
		),
	)
}

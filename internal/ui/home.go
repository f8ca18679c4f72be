package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	HomeHeadline   = "Organizá documentos, pagos, recordatorios todo en un solo lugar"
	HomeSubheading = "Tu organizador colaborativo en la nube ☁️"
)

// Home renders the placeholder landing view.
func Home() g.Node {
	return h.Div(
		h.Class("max-w-7xl mx-auto px-6 py-20"),
		h.Div(
			h.Class("text-center mb-12"),
			h.H1(h.Class("text-4xl font-bold mb-4 text-gray-900"), g.Text(HomeHeadline)),
			h.P(h.Class("text-xl text-gray-600"), g.Text(HomeSubheading)),
		),
		h.Div(
			h.Class("rounded-2xl p-12 text-center bg-white shadow-lg"),
			h.P(h.Class("text-lg text-gray-600"), g.Text("Aquí irá el contenido del Home")),
			h.P(h.Class("text-sm mt-2 text-gray-400"), g.Text("(Scroll para ver el navbar sticky en acción)")),
		),
		// filler so the sticky header has something to scroll over
		h.Div(h.Class("h-96")),
	)
}

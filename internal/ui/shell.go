package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Shell stacks Navbar, Home and Footer vertically. Footer relies on the
// flex column to stick to the bottom of short pages (mt-auto).
func Shell() g.Node {
	return h.Div(
		h.Class("min-h-screen flex flex-col"),
		Navbar(),
		h.Main(h.Class("flex-1"), Home()),
		Footer(),
	)
}

package view

import (
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage is the document shown to browsers when a page cannot be served.
// message is rendered as text; it never carries internal error details.
// A non-empty reference (the request ID) is shown so visitors can quote it.
func ErrorPage(status int, message, reference string) g.Node {
	heading := strconv.Itoa(status) + " " + http.StatusText(status)

	return Layout(PageConfig{Title: heading},
		Main(
			Class("flex flex-1 flex-col items-center justify-center px-4"),
			H1(Class("font-display text-4xl font-light text-white"), g.Text(heading)),
			P(Class("mt-4 text-sm/6 text-gray-300"), g.Text(message)),
			g.If(reference != "",
				P(Class("mt-2 text-xs text-gray-400"), g.Text("Reference: "), Code(g.Text(reference))),
			),
			A(Href("/"), Class("mt-8 text-sky-300"), g.Text("Back to MDA")),
		),
	)
}

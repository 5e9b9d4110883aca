package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const iconLinkClass = "group relative isolate flex items-center rounded-lg px-2 py-0.5 text-[0.8125rem]/6 " +
	"font-medium text-white/30 transition-colors hover:text-sky-300 gap-x-3"

// IconLink renders a labeled link with an optional leading icon.
func IconLink(href string, icon IconRenderer, class string, label string) g.Node {
	if class != "" {
		class = class + " " + iconLinkClass
	} else {
		class = iconLinkClass
	}

	var iconNode g.Node
	if icon != nil {
		iconNode = icon(DisplayProps{"class": "h-4 w-4 flex-none"})
	}

	return A(
		Href(href),
		Class(class),
		Span(Class("absolute inset-0 -z-10 scale-75 rounded-lg bg-white/5 opacity-0 transition group-hover:scale-100 group-hover:opacity-100")),
		g.If(iconNode != nil, iconNode),
		Span(Class("self-baseline text-white"), g.Text(label)),
	)
}

package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageConfig holds document-level metadata.
type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

const (
	defaultTitle       = "MDA - Data, Annotations, Versions, Together"
	defaultDescription = "MDA is a file format that combines training data and annotations with versioned annotation history."
)

// Layout wraps content in an HTML document.
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}

	if config.Description == "" {
		config.Description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("h-full antialiased"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Class("flex min-h-full flex-col bg-gray-950"),
				g.Group(content),
			),
		),
	})
}

// LandingPage is the full document served at the site root.
func LandingPage(config PageConfig, intro g.Node) g.Node {
	return Layout(config,
		Main(
			Class("relative flex flex-1 flex-col px-4 pt-10 pb-16 sm:px-6 lg:px-8"),
			Div(
				Class("mx-auto w-full max-w-lg lg:mx-0 lg:max-w-xl"),
				intro,
			),
		),
	)
}

package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/web3infra-foundation/mda-site/internal/domain"
)

// Intro renders the hero: headline, description, sign-up form and the row
// of icon links. A nil signUp leaves the form out.
func Intro(content domain.Intro, signUp SignUpForm) g.Node {
	form := g.Node(g.Group(nil))
	if signUp != nil {
		form = signUp()
	}

	return g.Group([]g.Node{
		H1(
			Class("mt-14 font-display text-4xl/tight font-light text-white"),
			g.Text(content.Title),
			g.Text(" "),
			Br(),
			Span(Class("text-sky-300"), g.Text(content.Tagline)),
		),
		P(
			Class("mt-4 text-sm/6 text-gray-300"),
			g.Text(content.Description),
		),
		form,
		Div(
			Class("mt-8 flex flex-wrap justify-center gap-x-1 gap-y-3 sm:gap-x-2 lg:justify-start"),
			g.Group(g.Map(content.Links, func(l domain.LinkTarget) g.Node {
				return IconLink(l.Href, IconFor(l.Icon), "flex-none", l.Label)
			})),
		),
	})
}

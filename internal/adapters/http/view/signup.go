package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SignUpForm supplies the sign-up form markup. Validation and submission
// belong to whatever serves the form's action.
type SignUpForm func() g.Node

// NewSignUpForm returns a form that posts an email address to action.
func NewSignUpForm(action string) SignUpForm {
	return func() g.Node {
		return FormEl(
			Class("relative isolate mt-8 flex items-center pr-1"),
			g.If(action != "", Action(action)),
			Method("post"),
			g.El("label", For("signup-email"), Class("sr-only"), g.Text("Email address")),
			Input(
				Required(),
				Type("email"),
				AutoComplete("email"),
				Name("email"),
				ID("signup-email"),
				Placeholder("Email address"),
				Class("peer w-0 flex-auto bg-transparent px-4 py-2.5 text-base text-white placeholder:text-gray-500 focus:outline-none sm:text-[0.8125rem]/6"),
			),
			Button(
				Type("submit"),
				Class("flex-none rounded-md bg-white/10 px-3 py-1.5 text-[0.8125rem]/6 font-semibold text-white hover:bg-white/15"),
				g.Text("Get updates"),
			),
			Div(Class("absolute inset-0 -z-10 rounded-lg transition peer-focus:ring-4 peer-focus:ring-sky-300/15")),
			Div(Class("absolute inset-0 -z-10 rounded-lg bg-white/2.5 ring-1 ring-white/15 transition peer-focus:ring-sky-300")),
		)
	}
}

// Package domain contains the landing page content model.
package domain

// Destinations that are part of the product's public identity.
const (
	// DocumentationHref is the placeholder documentation destination.
	DocumentationHref = "#"

	// RepositoryHref is where the MDA sources live.
	RepositoryHref = "https://github.com/web3infra-foundation/mega/tree/main/mda"

	// ContactHref is the maintainers' mail-to address.
	ContactHref = "mailto:genedna@gmail.com"
)

// IconKind identifies which icon renderer a link uses.
type IconKind string

const (
	IconBook   IconKind = "book"
	IconGitHub IconKind = "github"
	IconEmail  IconKind = "email"
)

// LinkTarget pairs a label and an icon with a destination.
// Values are built fresh for each render and never mutated.
type LinkTarget struct {
	// Label is the visible link text.
	Label string

	// Href is a URL or mail-to address.
	Href string

	// Icon selects the icon drawn before the label.
	Icon IconKind
}

// Intro is the hero section content.
type Intro struct {
	// Title is the headline, e.g. "MDA 0.1.0".
	Title string

	// Tagline is the highlighted second headline line.
	Tagline string

	// Description is the paragraph under the headline.
	Description string

	// Links are rendered left to right in this order.
	Links []LinkTarget
}

// DefaultIntro returns the MDA hero content.
func DefaultIntro() Intro {
	return NewIntro(DocumentationHref)
}

// NewIntro returns the MDA hero content with the documentation link pointing
// at docsHref. An empty docsHref falls back to DocumentationHref.
func NewIntro(docsHref string) Intro {
	if docsHref == "" {
		docsHref = DocumentationHref
	}

	return Intro{
		Title:   "MDA 0.1.0",
		Tagline: "Data, Annotations, Versions, Together.",
		Description: "MDA is a file format that combines training data and annotations, " +
			"and allows for version control of annotations during training. " +
			"It enhances the manageability of data.",
		Links: []LinkTarget{
			{Label: "Documentation", Href: docsHref, Icon: IconBook},
			{Label: "GitHub", Href: RepositoryHref, Icon: IconGitHub},
			{Label: "Email", Href: ContactHref, Icon: IconEmail},
		},
	}
}

// Link returns the link with the given label.
func (i Intro) Link(label string) (LinkTarget, error) {
	for _, l := range i.Links {
		if l.Label == label {
			return l, nil
		}
	}

	return LinkTarget{}, NewNotFoundError("link", label)
}

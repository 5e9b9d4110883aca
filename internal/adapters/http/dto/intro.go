package dto

import "github.com/web3infra-foundation/mda-site/internal/domain"

// IntroResponse is the JSON projection of the hero content.
type IntroResponse struct {
	Title       string         `json:"title"`
	Tagline     string         `json:"tagline"`
	Description string         `json:"description"`
	Links       []LinkResponse `json:"links"`
}

// LinkResponse is one hero link.
type LinkResponse struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

// NewIntroResponse converts intro, preserving link order.
func NewIntroResponse(intro domain.Intro) IntroResponse {
	links := make([]LinkResponse, 0, len(intro.Links))
	for _, l := range intro.Links {
		links = append(links, LinkResponse{
			Label: l.Label,
			Href:  l.Href,
			Icon:  string(l.Icon),
		})
	}

	return IntroResponse{
		Title:       intro.Title,
		Tagline:     intro.Tagline,
		Description: intro.Description,
		Links:       links,
	}
}

package view

import (
	"context"
	"io"

	"github.com/web3infra-foundation/mda-site/internal/domain"
)

// Renderer renders landing pages with fixed document metadata and sign-up form.
type Renderer struct {
	page   PageConfig
	signUp SignUpForm
}

// NewRenderer returns a Renderer. A nil signUp renders the hero without a form.
func NewRenderer(page PageConfig, signUp SignUpForm) *Renderer {
	return &Renderer{page: page, signUp: signUp}
}

// RenderLanding writes the landing page document for intro to w.
func (r *Renderer) RenderLanding(ctx context.Context, w io.Writer, intro domain.Intro) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return LandingPage(r.page, Intro(intro, r.signUp)).Render(w)
}

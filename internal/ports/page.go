// Package ports defines the contracts between the application layer and
// its adapters.
package ports

import (
	"context"
	"io"

	"github.com/web3infra-foundation/mda-site/internal/domain"
)

// PageRenderer turns hero content into a complete landing page document.
type PageRenderer interface {
	// RenderLanding writes the landing page for intro to w.
	RenderLanding(ctx context.Context, w io.Writer, intro domain.Intro) error
}

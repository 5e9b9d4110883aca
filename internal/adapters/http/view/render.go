package view

import (
	"strings"

	g "maragu.dev/gomponents"
)

// RenderString renders n into a string.
func RenderString(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Package view renders the landing page as gomponents node trees.
package view

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	g "maragu.dev/gomponents"

	"github.com/web3infra-foundation/mda-site/internal/domain"
)

// DisplayProps are presentational attributes applied to an icon's root <svg>.
// A prop named like one of the icon's defaults replaces that default. Names
// that cannot form an HTML attribute are dropped.
type DisplayProps map[string]string

// IconRenderer draws a fixed icon with the given props.
type IconRenderer func(props DisplayProps) g.Node

const (
	bookPath = "M7 3.41a1 1 0 0 0-.668-.943L2.275 1.039a.987.987 0 0 0-.877.166c-.25.192-.398.493-.398.812V12.2c0 " +
		".454.296.853.725.977l3.948 1.365A1 1 0 0 0 7 13.596V3.41ZM9 13.596a1 1 0 0 0 1.327.946l3.948-1.365c.429-.124" +
		".725-.523.725-.977V2.017c0-.32-.147-.62-.398-.812a.987.987 0 0 0-.877-.166L9.668 2.467A1 1 0 0 0 9 3.41v10.186Z"

	gitHubPath = "M8 .198a8 8 0 0 0-8 8 7.999 7.999 0 0 0 5.47 7.59c.4.076.547-.172.547-.384 0-.19-.007-.694-.01-1.36-2.226" +
		".482-2.695-1.074-2.695-1.074-.364-.923-.89-1.17-.89-1.17-.725-.496.056-.486.056-.486.803.056 1.225.824 1.225" +
		".824.714 1.224 1.873.87 2.33.666.072-.518.278-.87.507-1.07-1.777-.2-3.644-.888-3.644-3.954 0-.873.31-1.586" +
		".823-2.146-.09-.202-.36-1.016.07-2.118 0 0 .67-.214 2.2.82a7.67 7.67 0 0 1 2-.27 7.67 7.67 0 0 1 2 .27c1.52" +
		"-1.034 2.19-.82 2.19-.82.43 1.102.16 1.916.08 2.118.51.56.82 1.273.82 2.146 0 3.074-1.87 3.75-3.65 3.947.28" +
		".24.54.73.54 1.48 0 1.07-.01 1.93-.01 2.19 0 .21.14.46.55.38A7.972 7.972 0 0 0 16 8.199a8 8 0 0 0-8-8Z"

	emailBoundsPath = "M0 0h24v24H0z"

	emailPath = "M20 2H4a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V4a2 2 0 0 0-2-2zm0 4l-8 5-8-5V4l8 5 8-5v2zm0 " +
		"4-8 5-8-5V8l8 5 8-5v2zm0 5H4v2h16v-2z"
)

// BookIcon draws the documentation icon.
func BookIcon(props DisplayProps) g.Node {
	return svgIcon("0 0 16 16", props, path(bookPath))
}

// GitHubIcon draws the GitHub mark.
func GitHubIcon(props DisplayProps) g.Node {
	return svgIcon("0 0 16 16", props, path(gitHubPath))
}

// EmailIcon draws the envelope icon.
func EmailIcon(props DisplayProps) g.Node {
	return svgIcon("0 0 24 24", props,
		g.El("path", g.Attr("d", emailBoundsPath), g.Attr("fill", "none")),
		path(emailPath),
	)
}

var iconRenderers = map[domain.IconKind]IconRenderer{
	domain.IconBook:   BookIcon,
	domain.IconGitHub: GitHubIcon,
	domain.IconEmail:  EmailIcon,
}

// IconFor returns the renderer for kind, or nil if there is none.
func IconFor(kind domain.IconKind) IconRenderer {
	return iconRenderers[kind]
}

// svgIcon merges props over the shared icon defaults and emits the attributes
// in key order so the same props always produce the same bytes.
func svgIcon(viewBox string, props DisplayProps, children ...g.Node) g.Node {
	attrs := map[string]string{
		"viewBox":     viewBox,
		"aria-hidden": "true",
		"fill":        "currentColor",
	}
	for name, value := range props {
		if validAttrName(name) {
			attrs[name] = value
		}
	}

	nodes := make([]g.Node, 0, len(attrs)+len(children))
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		nodes = append(nodes, g.Attr(name, attrs[name]))
	}

	return g.El("svg", append(nodes, children...)...)
}

// validAttrName reports whether name is a well-formed HTML attribute name.
func validAttrName(name string) bool {
	return name != "" && !strings.ContainsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(`"'>/=<`, r)
	})
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

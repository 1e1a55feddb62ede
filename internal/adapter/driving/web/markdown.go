package web

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Benchmark and event descriptions are authored in markdown in the seed
// migrations. Outbound links open in a new tab and carry rel="nofollow".
var (
	descriptionMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	descriptionPolicy = newDescriptionPolicy()
)

func newDescriptionPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// DescriptionHTML renders a markdown description to sanitized HTML ready for
// templ.Raw. Empty input renders nothing. If goldmark fails the source is
// sanitized as-is.
func DescriptionHTML(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := descriptionMarkdown.Convert([]byte(src), &buf); err != nil {
		return descriptionPolicy.Sanitize(src)
	}

	return descriptionPolicy.Sanitize(buf.String())
}

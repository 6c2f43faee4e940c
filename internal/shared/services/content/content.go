package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Service cleans user-submitted text before it is stored and renders ticket
// and comment bodies to HTML for display.
type Service interface {
	// Sanitize strips all HTML from a plain-text field such as a subject or
	// a category name and trims surrounding whitespace.
	Sanitize(text string) string
	// RenderSafeHTML converts a markdown body to HTML and sanitizes the
	// result with a user-generated-content policy.
	RenderSafeHTML(markdown string) (string, error)
}

type serviceImpl struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "pre")

	return &serviceImpl{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) Sanitize(text string) string {
	return strings.TrimSpace(s.strict.Sanitize(text))
}

func (s *serviceImpl) RenderSafeHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return s.ugc.Sanitize(buf.String()), nil
}

// Package gfm renders GitHub-flavored Markdown to HTML.
package gfm

import (
	"strings"

	"rsc.io/markdown"
)

// Renderer converts Markdown text to HTML. It is safe for concurrent use.
//
// Create instances with [New].
type Renderer struct {
	parser *markdown.Parser
}

// New creates a [Renderer] with the GitHub extensions enabled: tables, task
// lists, strikethrough and bare URL autolinks.
func New() *Renderer {
	return &Renderer{
		parser: &markdown.Parser{
			Strikethrough: true,
			TaskListItems: true,
			AutoLinkText:  true,
			Table:         true,
		},
	}
}

// Render returns text as HTML, without trailing newlines. Empty text renders
// as the empty string.
func (r *Renderer) Render(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	doc := r.parser.Parse(text)

	return strings.TrimRight(markdown.ToHTML(doc), "\n")
}

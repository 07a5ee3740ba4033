// Package goldmark renders entry markdown to HTML using yuin/goldmark.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/uscon"
	"github.com/yuin/goldmark"
)

// Ensure Renderer implements uscon.MarkdownRenderer at compile time.
var _ uscon.MarkdownRenderer = (*Renderer)(nil)

// Renderer wraps a goldmark instance configured for entry text.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// Render transforms markdown into HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", uscon.Errorf(uscon.EINVALID, "empty markdown input")
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

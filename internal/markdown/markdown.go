// Package markdown is the default in-process prose collaborator, rendering
// doc-block Markdown to HTML with Goldmark.
package markdown

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
)

// Renderer implements render.ProseRenderer on Goldmark.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds the renderer used for doc blocks. Raw HTML passes
// through unescaped: literate prose commonly embeds markup directly.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// RenderProse converts the marker-carrying doc stream to HTML. Divider
// marker lines come out as level-5 headings and stay recognizable for the
// splitter.
func (r *Renderer) RenderProse(_ context.Context, text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", werrors.RenderFailed("prose", err)
	}
	return buf.String(), nil
}

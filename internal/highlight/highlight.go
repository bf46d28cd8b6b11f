// Package highlight is the default in-process code collaborator, wrapping
// Chroma's HTML formatter.
package highlight

import (
	"bytes"
	"context"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
)

const defaultStyle = "github"

// Highlighter implements render.Highlighter on Chroma.
type Highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// New builds the highlighter used for code blocks. Output is span markup
// with CSS classes and no surrounding <pre>; the page template supplies the
// cell wrapper.
func New() *Highlighter {
	style := styles.Get(defaultStyle)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
		style: style,
	}
}

// Highlight renders the marker-carrying code stream. Unknown language
// identifiers fall back to plain text rather than failing: highlighting is
// cosmetic, the marker lines are what the pipeline depends on.
func (h *Highlighter) Highlight(_ context.Context, code, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", werrors.RenderFailed("highlight", err).WithContext("language", language)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", werrors.RenderFailed("highlight", err).WithContext("language", language)
	}
	return buf.String(), nil
}

// Stylesheet returns the CSS rules for the highlighter's classes, for
// embedding in the page template.
func (h *Highlighter) Stylesheet() (string, error) {
	var buf bytes.Buffer
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", werrors.RenderFailed("highlight", err)
	}
	return buf.String(), nil
}

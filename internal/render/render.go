// Package render defines the contracts for the external rendering
// collaborators and builds the marker-carrying streams fed to them.
//
// Each collaborator is a text-to-text transform behind a narrow interface so
// the concrete tool (in-process library or external command) can be swapped
// without touching the pipeline. The divider marker is the synchronization
// token that lets the splitter re-locate block boundaries after rendering;
// it is a single named constant and must only ever be checked against here
// and in the split package.
package render

import (
	"context"
	"strings"

	"git.home.luguber.info/inful/litweave/internal/blocks"
)

// DividerToken is the literal synchronization token inserted at every block
// boundary before external rendering. Both collaborators must carry it
// through to their output verbatim.
const DividerToken = "::LITWEAVE-DIVIDER::"

// DocDividerLine is the marker as written into the prose stream. The
// heading level keeps renderers from folding it into adjacent paragraphs.
const DocDividerLine = "##### " + DividerToken

// CodeDividerLine is the marker as written into the code stream, shaped as
// a comment so highlighters pass it through as an ordinary token.
const CodeDividerLine = "# " + DividerToken

// ProseRenderer renders concatenated doc-block text (Markdown) to HTML.
type ProseRenderer interface {
	RenderProse(ctx context.Context, text string) (string, error)
}

// Highlighter renders concatenated code-block text to highlighted HTML for
// the given language identifier.
type Highlighter interface {
	Highlight(ctx context.Context, code, language string) (string, error)
}

// DocStream concatenates the doc blocks of all pairs, in order, separated
// by divider marker lines. Blank lines around the marker keep it a
// standalone Markdown block.
func DocStream(pairs []blocks.Pair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.Doc.Text())
	}
	return strings.Join(parts, "\n\n"+DocDividerLine+"\n\n")
}

// CodeStream concatenates the code blocks of all pairs, in order, separated
// by whole-line divider markers.
func CodeStream(pairs []blocks.Pair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.Code.Text())
	}
	return strings.Join(parts, "\n"+CodeDividerLine+"\n")
}

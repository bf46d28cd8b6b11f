// Package pipeline wires the stages of one run: classify, assemble, render
// both streams, split both streams, recombine, template.
//
// Data flows strictly forward and each stage completes before the next one
// starts. The first error aborts the run; no partial document is emitted.
package pipeline

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/litweave/internal/blocks"
	"git.home.luguber.info/inful/litweave/internal/classify"
	"git.home.luguber.info/inful/litweave/internal/document"
	"git.home.luguber.info/inful/litweave/internal/logfields"
	"git.home.luguber.info/inful/litweave/internal/render"
	"git.home.luguber.info/inful/litweave/internal/split"
)

// PageTemplater produces the final HTML page from a finished document.
type PageTemplater interface {
	RenderPage(doc document.Document) (string, error)
}

// Runner holds the collaborators and per-run settings for one invocation.
type Runner struct {
	Prose     render.ProseRenderer
	Highlight render.Highlighter
	Page      PageTemplater
	Language  string
	Title     string
}

// Run transforms one annotated source into a complete HTML document.
// name labels the source in diagnostics (a path, or "stdin").
func (r *Runner) Run(ctx context.Context, source, name string) (string, error) {
	lines := classify.ClassifyAll(source)
	if len(lines) > 0 && !classify.IsDirective(lines[0].Raw) {
		// Advisory only: the header flip applies regardless.
		slog.Warn("Source does not start with an interpreter directive", logfields.Path(name))
	}

	pairs := blocks.Assemble(lines)
	slog.Debug("Assembled blocks", logfields.Path(name), logfields.Blocks(len(pairs)))

	docHTML, err := r.Prose.RenderProse(ctx, render.DocStream(pairs))
	if err != nil {
		return "", err
	}
	codeHTML, err := r.Highlight.Highlight(ctx, render.CodeStream(pairs), r.Language)
	if err != nil {
		return "", err
	}

	docFragments, err := split.Split("docs", docHTML, len(pairs))
	if err != nil {
		return "", err
	}
	codeFragments, err := split.Split("code", codeHTML, len(pairs))
	if err != nil {
		return "", err
	}
	slog.Debug("Split rendered streams", logfields.Path(name), logfields.Fragments(len(docFragments)))

	doc, err := document.Recombine(r.Title, docFragments, codeFragments)
	if err != nil {
		return "", err
	}

	return r.Page.RenderPage(doc)
}

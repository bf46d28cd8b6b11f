// Package templates renders the finished fragment rows into the final HTML
// page: a two-column table with prose on the left and code on the right.
package templates

import (
	"bytes"
	_ "embed"
	"html/template"
	"os"

	"git.home.luguber.info/inful/litweave/internal/document"
	werrors "git.home.luguber.info/inful/litweave/internal/errors"
)

//go:embed page.html.tmpl
var pageSource string

// pageData is the template's view of a document. Fragments are typed as
// template.HTML: they are renderer output, not user input to be escaped.
type pageData struct {
	Title        string
	DocFirst     bool
	HighlightCSS template.CSS
	Rows         []pageRow
}

type pageRow struct {
	Index int
	Doc   template.HTML
	Code  template.HTML
}

// Renderer is the page template collaborator.
type Renderer struct {
	tmpl *template.Template
	css  string
}

// New parses the built-in page template. highlightCSS is embedded into the
// page's stylesheet.
func New(highlightCSS string) (*Renderer, error) {
	return parse(pageSource, highlightCSS)
}

// NewFromFile parses a user-supplied page template instead of the built-in
// one. It must consume the same data shape.
func NewFromFile(path, highlightCSS string) (*Renderer, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, werrors.Wrap(err, werrors.CategoryConfig, werrors.SeverityFatal, "page template not readable").
			WithContext("path", path)
	}
	return parse(string(source), highlightCSS)
}

func parse(source, highlightCSS string) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(source)
	if err != nil {
		return nil, werrors.RenderFailed("page", err)
	}
	return &Renderer{tmpl: tmpl, css: highlightCSS}, nil
}

// RenderPage produces the complete HTML document for one run.
func (r *Renderer) RenderPage(doc document.Document) (string, error) {
	data := pageData{
		Title:        doc.Title,
		DocFirst:     doc.DocFirst,
		HighlightCSS: template.CSS(r.css),
	}
	for _, row := range doc.Rows {
		data.Rows = append(data.Rows, pageRow{
			Index: row.Index,
			Doc:   template.HTML(row.Doc),
			Code:  template.HTML(row.Code),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", werrors.RenderFailed("page", err)
	}
	return buf.String(), nil
}

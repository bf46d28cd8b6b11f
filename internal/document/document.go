// Package document recombines the two rendered fragment lists into the
// final ordered document handed to the page template.
package document

import (
	"strings"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
)

// Row is one doc/code fragment pair, rendered as one table row.
type Row struct {
	Index int
	Doc   string
	Code  string
}

// Document is the ordered result of one run. DocFirst records whether the
// source opened with a comment (no header code); the row list keeps its
// index alignment either way, a blank leading code fragment just renders an
// empty cell.
type Document struct {
	Title    string
	DocFirst bool
	Rows     []Row
}

// Recombine pairs the aligned fragment lists under a title. The lists must
// be equal length and non-empty; a mismatch here means an upstream
// integrity check was bypassed and is fatal.
func Recombine(title string, docs, codes []string) (Document, error) {
	if len(docs) != len(codes) {
		return Document{}, werrors.FragmentMismatch("merge", len(docs), len(codes))
	}
	if len(docs) == 0 {
		return Document{}, werrors.FragmentMismatch("merge", 1, 0)
	}

	doc := Document{
		Title:    title,
		DocFirst: strings.TrimSpace(codes[0]) == "",
	}

	for i := range docs {
		code := codes[i]
		if strings.TrimSpace(code) == "" {
			// Suppress visual emission of blank code; the row itself stays
			// so fragment indexes keep lining up with block pairs.
			code = ""
		}
		doc.Rows = append(doc.Rows, Row{Index: i, Doc: docs[i], Code: code})
	}
	return doc, nil
}

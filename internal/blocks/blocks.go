// Package blocks groups labeled lines into ordered doc/code block pairs.
//
// Blocks share one index space: doc block k and code block k form the k-th
// pair of the document. Pairing follows the header-flip rule: the code that
// precedes a file's first comment (typically the interpreter directive) is
// held back and paired with that first comment block, so the prose introduces
// the code even though the code came first in the source. The flip changes
// presentation order only; Flatten restores every line in original order.
package blocks

import (
	"strings"

	"git.home.luguber.info/inful/litweave/internal/classify"
)

// Block is a maximal run of same-tagged lines with its pair index.
type Block struct {
	Index int
	Tag   classify.Tag
	Lines []classify.LabeledLine
}

// Empty reports whether the block holds no lines.
func (b Block) Empty() bool {
	return len(b.Lines) == 0
}

// Text returns the block's content for rendering: stripped prose for doc
// blocks, raw source lines for code blocks, joined with newlines.
func (b Block) Text() string {
	parts := make([]string, 0, len(b.Lines))
	for _, ln := range b.Lines {
		if b.Tag == classify.TagDoc {
			parts = append(parts, ln.Text)
		} else {
			parts = append(parts, ln.Raw)
		}
	}
	return strings.Join(parts, "\n")
}

// Pair is the k-th doc block and the k-th code block.
type Pair struct {
	Index int
	Doc   Block
	Code  Block
}

// assembler state. The header flip is a one-time special case, so the
// machine has exactly two states and a single transition: the first
// boundary out of the leading code run.
type state int

const (
	collectingHeader state = iota
	steadyState
)

type assembler struct {
	st      state
	docAcc  []classify.LabeledLine
	codeAcc []classify.LabeledLine
	// pending is the code block awaiting its doc companion: the remembered
	// header code for the first pair, then each closed code run.
	pending []classify.LabeledLine
	pairs   []Pair
}

// Assemble consumes the labeled line stream of one file and returns its
// ordered pair list. Every file yields at least one pair: a file with no
// comments becomes a single blank doc block paired with the whole file.
func Assemble(lines []classify.LabeledLine) []Pair {
	a := &assembler{}
	for _, ln := range lines {
		a.feed(ln)
	}
	return a.finish()
}

func (a *assembler) feed(ln classify.LabeledLine) {
	switch a.st {
	case collectingHeader:
		if ln.Tag == classify.TagCode {
			a.codeAcc = append(a.codeAcc, ln)
			return
		}
		// First boundary: remember the (possibly empty) header code and
		// start the first doc block.
		a.pending = a.codeAcc
		a.codeAcc = nil
		a.docAcc = append(a.docAcc, ln)
		a.st = steadyState

	case steadyState:
		if ln.Tag == classify.TagCode {
			a.codeAcc = append(a.codeAcc, ln)
			return
		}
		if len(a.codeAcc) > 0 {
			// A doc line after a code run closes the current pair.
			a.emit(a.docAcc, a.pending)
			a.pending = a.codeAcc
			a.codeAcc = nil
			a.docAcc = nil
		}
		a.docAcc = append(a.docAcc, ln)
	}
}

func (a *assembler) finish() []Pair {
	if a.st == collectingHeader {
		// No comment in the whole file: one pair, blank doc.
		a.emit(nil, a.codeAcc)
		return a.pairs
	}

	a.emit(a.docAcc, a.pending)
	if len(a.codeAcc) > 0 {
		a.emit(nil, a.codeAcc)
	}
	return a.pairs
}

func (a *assembler) emit(doc, code []classify.LabeledLine) {
	idx := len(a.pairs)
	a.pairs = append(a.pairs, Pair{
		Index: idx,
		Doc:   Block{Index: idx, Tag: classify.TagDoc, Lines: doc},
		Code:  Block{Index: idx, Tag: classify.TagCode, Lines: code},
	})
}

// Flatten re-linearizes a pair list into the original line order: each
// pair's code block precedes its doc block, undoing the header flip.
func Flatten(pairs []Pair) []classify.LabeledLine {
	var lines []classify.LabeledLine
	for _, p := range pairs {
		lines = append(lines, p.Code.Lines...)
		lines = append(lines, p.Doc.Lines...)
	}
	return lines
}

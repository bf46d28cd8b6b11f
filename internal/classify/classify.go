// Package classify labels raw input lines as documentation or code.
//
// The rule is deliberately narrow: a line is documentation only when the `#`
// lead-in is followed by a single space or nothing at all. A `#` followed by
// any other character (`#!/bin/sh`, `#/ Usage: ...`) stays code, which is what
// lets scripts carry comment-prefixed metadata without it being rendered as
// prose.
package classify

import "strings"

// Tag marks a line as either prose documentation or code.
type Tag int

const (
	TagCode Tag = iota
	TagDoc
)

func (t Tag) String() string {
	if t == TagDoc {
		return "doc"
	}
	return "code"
}

const leadIn = "#"

// LabeledLine is one physical input line with its classification.
// Text carries the lead-in-stripped prose for doc lines and is empty for code.
type LabeledLine struct {
	Number int // 1-based position in the source
	Raw    string
	Tag    Tag
	Text   string
}

// Classify labels a single raw line. It is a pure function: no state, no
// errors, the same line always yields the same label.
func Classify(number int, raw string) LabeledLine {
	line := LabeledLine{Number: number, Raw: raw, Tag: TagCode}

	if raw == leadIn {
		line.Tag = TagDoc
		return line
	}
	if strings.HasPrefix(raw, leadIn+" ") {
		line.Tag = TagDoc
		line.Text = raw[len(leadIn)+1:]
		return line
	}
	return line
}

// ClassifyAll labels every line of a source text, splitting on newlines.
// A trailing newline does not produce a phantom empty line.
func ClassifyAll(source string) []LabeledLine {
	raw := strings.Split(source, "\n")
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	lines := make([]LabeledLine, 0, len(raw))
	for i, text := range raw {
		lines = append(lines, Classify(i+1, text))
	}
	return lines
}

// IsDirective reports whether a raw line looks like an interpreter directive.
// Used only for the advisory first-line check; directives always classify as
// code because `#!` has no space after the lead-in.
func IsDirective(raw string) bool {
	return strings.HasPrefix(raw, "#!")
}

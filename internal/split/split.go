// Package split cuts a rendered HTML stream back into per-block fragments
// at the divider marker lines.
//
// The cut is keyed on the exact marker literal, never on blank lines or
// markup shape: rendering reflows whitespace but must carry the marker text
// through verbatim. A fragment count that does not match the block count
// means the renderer desynchronized from the source and the document cannot
// be safely assembled.
package split

import (
	"strings"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
	"git.home.luguber.info/inful/litweave/internal/render"
)

// Split cuts stream at lines carrying the divider token and returns exactly
// want fragments with renderer artifacts trimmed from their edges. The
// stream name only labels the integrity error.
func Split(name, stream string, want int) ([]string, error) {
	var fragments []string
	var current []string

	for _, line := range strings.Split(stream, "\n") {
		if strings.Contains(line, render.DividerToken) {
			fragments = append(fragments, repairEdges(strings.Join(current, "\n")))
			current = nil
			continue
		}
		current = append(current, line)
	}
	fragments = append(fragments, repairEdges(strings.Join(current, "\n")))

	if len(fragments) != want {
		return nil, werrors.FragmentMismatch(name, want, len(fragments))
	}
	return fragments, nil
}

// repairEdges trims whitespace and fixes span markup severed by the cut: a
// highlighter token whose text includes the newline around a marker leaves
// an orphan </span> after the cut and an unclosed <span> before it.
func repairEdges(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	fragment = strings.TrimSpace(strings.TrimPrefix(fragment, "</span>"))
	if i := strings.LastIndex(fragment, "<span"); i >= 0 && !strings.Contains(fragment[i:], "</span>") {
		fragment += "</span>"
	}
	return fragment
}

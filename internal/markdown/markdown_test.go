package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/litweave/internal/render"
)

func TestRenderProse_BasicMarkdown(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderProse(context.Background(), "Some *emphasis* and `code`.")
	require.NoError(t, err)
	assert.Contains(t, out, "<em>emphasis</em>")
	assert.Contains(t, out, "<code>code</code>")
}

func TestRenderProse_PreservesDividerMarker(t *testing.T) {
	r := NewRenderer()

	stream := "First block.\n\n" + render.DocDividerLine + "\n\nSecond block."
	out, err := r.RenderProse(context.Background(), stream)
	require.NoError(t, err)

	var markerLines int
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, render.DividerToken) {
			markerLines++
			assert.Contains(t, line, "<h5>")
		}
	}
	assert.Equal(t, 1, markerLines)
}

func TestRenderProse_DoesNotReorderContent(t *testing.T) {
	r := NewRenderer()

	stream := "alpha\n\n" + render.DocDividerLine + "\n\nbravo\n\n" + render.DocDividerLine + "\n\ncharlie"
	out, err := r.RenderProse(context.Background(), stream)
	require.NoError(t, err)

	a := strings.Index(out, "alpha")
	b := strings.Index(out, "bravo")
	c := strings.Index(out, "charlie")
	require.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestRenderProse_RawHTMLPassesThrough(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderProse(context.Background(), "<dl><dt>term</dt></dl>")
	require.NoError(t, err)
	assert.Contains(t, out, "<dl>")
}

func TestRenderProse_IsDeterministic(t *testing.T) {
	r := NewRenderer()

	first, err := r.RenderProse(context.Background(), "## A heading\n\ntext")
	require.NoError(t, err)
	second, err := r.RenderProse(context.Background(), "## A heading\n\ntext")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

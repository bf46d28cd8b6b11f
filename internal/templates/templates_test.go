package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/litweave/internal/document"
	werrors "git.home.luguber.info/inful/litweave/internal/errors"
)

func sampleDocument() document.Document {
	return document.Document{
		Title: "tool.sh",
		Rows: []document.Row{
			{Index: 0, Doc: "<p>Say hi</p>", Code: "<span class=\"c\">#!/bin/sh</span>"},
			{Index: 1, Doc: "", Code: "<span class=\"nb\">echo</span> hi"},
		},
	}
}

func TestRenderPage_BuildsTwoColumnTable(t *testing.T) {
	r, err := New(".chroma { color: #000; }")
	require.NoError(t, err)

	out, err := r.RenderPage(sampleDocument())
	require.NoError(t, err)

	assert.Contains(t, out, "<title>tool.sh</title>")
	assert.Contains(t, out, "<h1>tool.sh</h1>")
	assert.Contains(t, out, "id=\"section-0\"")
	assert.Contains(t, out, "id=\"section-1\"")
	assert.Contains(t, out, "td class=\"docs\"")
	assert.Contains(t, out, "td class=\"code\"")
	assert.Contains(t, out, ".chroma { color: #000; }")
	assert.Equal(t, 2, strings.Count(out, "<tr id="))
}

func TestRenderPage_FragmentsAreNotEscaped(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	out, err := r.RenderPage(sampleDocument())
	require.NoError(t, err)

	assert.Contains(t, out, "<p>Say hi</p>")
	assert.Contains(t, out, "<span class=\"c\">#!/bin/sh</span>")
	assert.NotContains(t, out, "&lt;p&gt;")
}

func TestRenderPage_TitleIsEscaped(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	doc := sampleDocument()
	doc.Title = "a<b>.sh"
	out, err := r.RenderPage(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "a&lt;b&gt;.sh")
}

func TestRenderPage_PresentationOrderReachesPage(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	doc := sampleDocument()
	out, err := r.RenderPage(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "class=\"code-first\"")

	doc.DocFirst = true
	out, err = r.RenderPage(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "class=\"doc-first\"")
}

func TestNewFromFile_CustomTemplateSeesDocFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("docfirst={{.DocFirst}}"), 0o600))

	r, err := NewFromFile(path, "")
	require.NoError(t, err)

	doc := sampleDocument()
	doc.DocFirst = true
	out, err := r.RenderPage(doc)
	require.NoError(t, err)
	assert.Equal(t, "docfirst=true", out)
}

func TestNewFromFile_UsesCustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("TITLE={{.Title}} ROWS={{len .Rows}}"), 0o600))

	r, err := NewFromFile(path, "")
	require.NoError(t, err)

	out, err := r.RenderPage(sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, "TITLE=tool.sh ROWS=2", out)
}

func TestNewFromFile_MissingTemplateIsConfigError(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.tmpl"), "")
	require.Error(t, err)
	assert.True(t, werrors.IsCategory(err, werrors.CategoryConfig))
}

func TestNew_BadTemplateSourceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.Unclosed"), 0o600))

	_, err := NewFromFile(path, "")
	require.Error(t, err)
}

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hi.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runWeave(t *testing.T, w *WeaveCmd, root *CLI) (string, error) {
	t.Helper()
	var out bytes.Buffer
	w.stdout = &out
	err := w.Run(context.Background(), &Global{}, root)
	return out.String(), err
}

func TestWeave_FileToDocument(t *testing.T) {
	root := &CLI{Config: ".litweave.yaml"}
	src := writeSource(t, "#!/bin/sh\n# Say hi\necho hi\n")

	out, err := runWeave(t, &WeaveCmd{Source: src}, root)
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>hi.sh</title>")
	assert.Contains(t, out, "Say hi")
	assert.Contains(t, out, "echo")
	assert.NotContains(t, out, "LITWEAVE-DIVIDER")
}

func TestWeave_TitleFlagOverridesFileName(t *testing.T) {
	root := &CLI{Config: ".litweave.yaml"}
	src := writeSource(t, "# prose\nls\n")

	out, err := runWeave(t, &WeaveCmd{Source: src, Title: "Custom Title"}, root)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Custom Title</title>")
	assert.NotContains(t, out, "<title>hi.sh</title>")
}

func TestWeave_StdinWhenSourceAbsent(t *testing.T) {
	root := &CLI{Config: ".litweave.yaml"}

	w := &WeaveCmd{stdin: strings.NewReader("# from a pipe\necho piped\n")}
	out, err := runWeave(t, w, root)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>stdin</title>")
	assert.Contains(t, out, "from a pipe")
}

func TestWeave_DashMeansStdin(t *testing.T) {
	root := &CLI{Config: ".litweave.yaml"}

	w := &WeaveCmd{Source: "-", stdin: strings.NewReader("# dash\n")}
	out, err := runWeave(t, w, root)
	require.NoError(t, err)
	assert.Contains(t, out, "dash")
}

func TestWeave_MissingSourceIsFileSystemError(t *testing.T) {
	root := &CLI{Config: ".litweave.yaml"}

	_, err := runWeave(t, &WeaveCmd{Source: filepath.Join(t.TempDir(), "absent.sh")}, root)
	require.Error(t, err)
	assert.True(t, werrors.IsCategory(err, werrors.CategoryFileSystem))
}

func TestWeave_MissingExplicitConfigIsConfigError(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "explicit-but-missing.yaml")}

	_, err := runWeave(t, &WeaveCmd{stdin: strings.NewReader("# x\n")}, root)
	require.Error(t, err)
	assert.True(t, werrors.IsCategory(err, werrors.CategoryConfig))
}

func TestWeave_MissingExternalCollaboratorFailsBeforeProcessing(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("markdown:\n  command: [\"litweave-no-such-tool\"]\n"), 0o600))
	root := &CLI{Config: cfgPath}

	_, err := runWeave(t, &WeaveCmd{stdin: strings.NewReader("# x\nls\n")}, root)
	require.Error(t, err)
	assert.True(t, werrors.IsCategory(err, werrors.CategoryRender))
}

func TestWeave_CustomTemplateFromConfig(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "page.tmpl")
	require.NoError(t, os.WriteFile(tmplPath, []byte("ROWS={{len .Rows}}"), 0o600))
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("template: "+tmplPath+"\n"), 0o600))
	root := &CLI{Config: cfgPath}

	out, err := runWeave(t, &WeaveCmd{stdin: strings.NewReader("#!/bin/sh\n# a\nx\n# b\ny\n")}, root)
	require.NoError(t, err)
	assert.Equal(t, "ROWS=3", out)
}

func TestWeave_RepeatedRunsAreByteIdentical(t *testing.T) {
	root := &CLI{Config: ".litweave.yaml"}
	src := writeSource(t, "#!/bin/sh\n# Greet\necho hello\n")

	first, err := runWeave(t, &WeaveCmd{Source: src}, root)
	require.NoError(t, err)
	second, err := runWeave(t, &WeaveCmd{Source: src}, root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/litweave/internal/config"
	werrors "git.home.luguber.info/inful/litweave/internal/errors"
	"git.home.luguber.info/inful/litweave/internal/highlight"
	"git.home.luguber.info/inful/litweave/internal/logfields"
	"git.home.luguber.info/inful/litweave/internal/markdown"
	"git.home.luguber.info/inful/litweave/internal/pipeline"
	"git.home.luguber.info/inful/litweave/internal/render"
	"git.home.luguber.info/inful/litweave/internal/templates"
	"git.home.luguber.info/inful/litweave/internal/workspace"
)

// WeaveCmd implements the 'weave' command: one source file in, one complete
// HTML document on stdout.
type WeaveCmd struct {
	Title    string `short:"t" help:"Document title (defaults to the source file name)"`
	Language string `short:"l" help:"Highlighter language identifier (overrides config)"`
	Source   string `arg:"" optional:"" help:"Source file to render ('-' or absent reads stdin)"`

	stdout io.Writer
	stdin  io.Reader
}

func (w *WeaveCmd) Run(ctx context.Context, _ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	source, name, err := w.readSource()
	if err != nil {
		return err
	}

	// The workspace is created before any processing so an unusable
	// temporary-storage location fails the run up front, and removed on
	// every exit path of this command.
	ws, err := workspace.Create(cfg.Workspace.BaseDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Cleanup(); err != nil {
			slog.Warn("Failed to cleanup workspace", logfields.Error(err))
		}
	}()

	runner, err := buildRunner(w, cfg, ws, name)
	if err != nil {
		return err
	}

	out, err := runner.Run(ctx, source, name)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(w.resolveStdout(), out); err != nil {
		return werrors.Wrap(err, werrors.CategoryFileSystem, werrors.SeverityFatal, "writing document failed")
	}
	return nil
}

// buildRunner assembles the collaborators for one run. External commands are
// availability-checked here, before the pipeline touches the source.
func buildRunner(w *WeaveCmd, cfg *config.Config, ws *workspace.Workspace, name string) (*pipeline.Runner, error) {
	language := w.Language
	if language == "" {
		language = cfg.Language
	}

	title := w.Title
	if title == "" {
		title = cfg.Title
	}
	if title == "" {
		title = filepath.Base(name)
	}

	var prose render.ProseRenderer = markdown.NewRenderer()
	if cfg.Markdown.External() {
		collab, err := render.NewExecCollaborator("prose", cfg.Markdown.Command, ws)
		if err != nil {
			return nil, err
		}
		if err := collab.Check(); err != nil {
			return nil, err
		}
		prose = &render.ExecProse{ExecCollaborator: collab}
	}

	highlighter := highlight.New()
	var codeRenderer render.Highlighter = highlighter
	if cfg.Highlight.External() {
		collab, err := render.NewExecCollaborator("highlight", cfg.Highlight.Command, ws)
		if err != nil {
			return nil, err
		}
		if err := collab.Check(); err != nil {
			return nil, err
		}
		codeRenderer = &render.ExecHighlighter{ExecCollaborator: collab}
	}

	css, err := highlighter.Stylesheet()
	if err != nil {
		return nil, err
	}

	var page *templates.Renderer
	if cfg.Template != "" {
		page, err = templates.NewFromFile(cfg.Template, css)
	} else {
		page, err = templates.New(css)
	}
	if err != nil {
		return nil, err
	}

	return &pipeline.Runner{
		Prose:     prose,
		Highlight: codeRenderer,
		Page:      page,
		Language:  language,
		Title:     title,
	}, nil
}

func (w *WeaveCmd) readSource() (content, name string, err error) {
	if w.Source == "" || w.Source == "-" {
		in := w.stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", "", werrors.SourceUnreadable("stdin", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(w.Source)
	if err != nil {
		return "", "", werrors.SourceUnreadable(w.Source, err)
	}
	return string(data), w.Source, nil
}

func (w *WeaveCmd) resolveStdout() io.Writer {
	if w.stdout != nil {
		return w.stdout
	}
	return os.Stdout
}

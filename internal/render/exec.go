package render

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
	"git.home.luguber.info/inful/litweave/internal/logfields"
)

// ArtifactStore is where exec collaborators keep their intermediate streams
// for post-mortem inspection; it is the run workspace in production.
type ArtifactStore interface {
	WriteArtifact(name, content string) (string, error)
}

// ExecCollaborator runs a configured external command as a synchronous child
// process: stream on stdin, HTML on stdout. A non-zero exit or empty output
// is fatal for the run; there are no retries.
type ExecCollaborator struct {
	role  string
	argv  []string
	store ArtifactStore
}

// NewExecCollaborator builds a collaborator for the given role ("prose" or
// "highlight") from an argv vector.
func NewExecCollaborator(role string, argv []string, store ArtifactStore) (*ExecCollaborator, error) {
	if len(argv) == 0 {
		return nil, werrors.ValidationFailed(role, "empty collaborator command")
	}
	return &ExecCollaborator{role: role, argv: argv, store: store}, nil
}

// Check verifies the command exists before any processing begins, so a
// missing collaborator is reported as an environment error up front.
func (e *ExecCollaborator) Check() error {
	if _, err := exec.LookPath(e.argv[0]); err != nil {
		return werrors.CollaboratorUnavailable(e.role, e.argv[0], err)
	}
	return nil
}

func (e *ExecCollaborator) run(ctx context.Context, input string, extraArgs ...string) (string, error) {
	args := append(append([]string{}, e.argv[1:]...), extraArgs...)
	cmd := exec.CommandContext(ctx, e.argv[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if e.store != nil {
		if _, err := e.store.WriteArtifact(e.role+".in", input); err != nil {
			return "", err
		}
	}

	slog.Debug("Invoking collaborator",
		logfields.Role(e.role),
		logfields.Command(strings.Join(e.argv, " ")))

	if err := cmd.Run(); err != nil {
		return "", werrors.RenderFailed(e.role, err).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return "", werrors.RenderFailed(e.role, nil).
			WithContext("reason", "collaborator produced no output")
	}

	out := stdout.String()
	if e.store != nil {
		if _, err := e.store.WriteArtifact(e.role+".out", out); err != nil {
			return "", err
		}
	}
	return out, nil
}

// ExecProse adapts an ExecCollaborator to the ProseRenderer contract.
type ExecProse struct {
	*ExecCollaborator
}

func (e *ExecProse) RenderProse(ctx context.Context, text string) (string, error) {
	return e.run(ctx, text)
}

// ExecHighlighter adapts an ExecCollaborator to the Highlighter contract.
// The language identifier is appended as the command's final argument.
type ExecHighlighter struct {
	*ExecCollaborator
}

func (e *ExecHighlighter) Highlight(ctx context.Context, code, language string) (string, error) {
	return e.run(ctx, code, language)
}

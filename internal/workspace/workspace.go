// Package workspace manages the ephemeral per-run directory holding
// intermediate artifacts (classified streams, collaborator input and output).
//
// A workspace exists only for the duration of one invocation. Creation happens
// before any processing so that an unusable temporary-storage location is
// reported as an environment error up front, and Cleanup runs on every exit
// path of the command.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
	"git.home.luguber.info/inful/litweave/internal/logfields"
)

// Workspace is one run's scratch directory.
type Workspace struct {
	runID string
	dir   string
}

// Create makes a run-unique directory under baseDir (os.TempDir when empty).
func Create(baseDir string) (*Workspace, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}

	runID := uuid.NewString()[:8]
	dir := filepath.Join(baseDir, fmt.Sprintf("litweave-%s", runID))

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, werrors.WorkspaceError("create", err)
	}

	slog.Debug("Created workspace", logfields.Path(dir), logfields.RunID(runID))
	return &Workspace{runID: runID, dir: dir}, nil
}

// RunID returns the run-unique identifier, used for log correlation.
func (w *Workspace) RunID() string {
	return w.runID
}

// Path returns the workspace directory path.
func (w *Workspace) Path() string {
	return w.dir
}

// WriteArtifact stores an intermediate artifact and returns its path.
func (w *Workspace) WriteArtifact(name, content string) (string, error) {
	if w.dir == "" {
		return "", werrors.WorkspaceError("write", fmt.Errorf("workspace not created"))
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", werrors.WorkspaceError("write", err)
	}
	return path, nil
}

// Cleanup removes the workspace directory. Safe to call more than once.
func (w *Workspace) Cleanup() error {
	if w.dir == "" {
		return nil
	}

	if err := os.RemoveAll(w.dir); err != nil {
		return werrors.WorkspaceError("cleanup", err)
	}

	slog.Debug("Cleaned up workspace", logfields.Path(w.dir), logfields.RunID(w.runID))
	w.dir = ""
	return nil
}

package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the command-line front end.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if we, ok := err.(*WeaveError); ok {
		return a.exitCodeFromWeave(we)
	}

	return 1
}

// exitCodeFromWeave maps WeaveError categories to exit codes.
func (a *CLIErrorAdapter) exitCodeFromWeave(err *WeaveError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryRender:
		return 8 // External collaborator error
	case CategoryFileSystem, CategoryIntegrity:
		return 11 // Run error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if we, ok := err.(*WeaveError); ok {
		return a.formatWeave(we)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatWeave formats a WeaveError for display.
func (a *CLIErrorAdapter) formatWeave(err *WeaveError) string {
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return err.Message
	default:
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// HandleError processes an error and exits the program with an
// appropriate code. A nil error is a no-op.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if we, ok := err.(*WeaveError); ok && a.verbose {
		attrs := []any{"category", string(we.Category)}
		for k, v := range we.Context {
			attrs = append(attrs, k, v)
		}
		a.logger.Error(we.Message, attrs...)
	}

	fmt.Fprintln(os.Stderr, message)
	os.Exit(exitCode)
}

package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath      = "path"
	KeyStage     = "stage"
	KeyBlocks    = "blocks"
	KeyFragments = "fragments"
	KeyLanguage  = "language"
	KeyRunID     = "run_id"
	KeyRole      = "role"
	KeyCommand   = "command"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr  { return slog.String(KeyStage, name) }
func Blocks(n int) slog.Attr       { return slog.Int(KeyBlocks, n) }
func Fragments(n int) slog.Attr    { return slog.Int(KeyFragments, n) }
func Language(l string) slog.Attr  { return slog.String(KeyLanguage, l) }
func RunID(id string) slog.Attr    { return slog.String(KeyRunID, id) }
func Role(r string) slog.Attr      { return slog.String(KeyRole, r) }
func Command(c string) slog.Attr   { return slog.String(KeyCommand, c) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *WeaveError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(reason string, cause error) *WeaveError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("reason", reason)
}

func ValidationFailed(field, reason string) *WeaveError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Pipeline errors

func CollaboratorUnavailable(role, command string, cause error) *WeaveError {
	return Wrap(cause, CategoryRender, SeverityFatal, "required collaborator unavailable").
		WithContext("role", role).
		WithContext("command", command)
}

func RenderFailed(role string, cause error) *WeaveError {
	return Wrap(cause, CategoryRender, SeverityFatal, "collaborator failed").
		WithContext("role", role)
}

func FragmentMismatch(stream string, want, got int) *WeaveError {
	return New(CategoryIntegrity, SeverityFatal, "fragment count does not match block count").
		WithContext("stream", stream).
		WithContext("want", want).
		WithContext("got", got)
}

// Environment errors

func WorkspaceError(operation string, cause error) *WeaveError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "workspace operation failed").
		WithContext("operation", operation)
}

func SourceUnreadable(path string, cause error) *WeaveError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "source not readable").
		WithContext("path", path)
}

package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFiles  = "files"
	FieldFormat = "format"

	// Parse statistics fields.
	FieldBytes       = "bytes"
	FieldTokens      = "tokens"
	FieldNodes       = "nodes"
	FieldDiagnostics = "diagnostics"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

package cli

// Exit codes for tagtree.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitSyntaxIssues indicates parsing completed but found diagnostics
	// while running in strict mode.
	ExitSyntaxIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

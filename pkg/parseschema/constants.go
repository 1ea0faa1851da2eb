package parseschema

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Dump split and exported successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (argument count, bad output dir)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitParseResidual = 10 // Unparsed content left after tokenization
	ExitFilesystem    = 11 // Directory, file, or symlink creation failed
)

const (
	// DefaultOutputDir is the output root used when no directory
	// argument, environment override, or config value is given.
	DefaultOutputDir = "schema"

	// MaxResidualPreviewLength is the maximum number of characters of
	// residual text shown in parse failure messages. This keeps error
	// output readable when a large dump fails to tokenize.
	MaxResidualPreviewLength = 400
)

package parseschema

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := splitter.Run(cfg)
//	if errors.Is(err, parseschema.ErrParseResidual) {
//	    // Handle unparsed dump content
//	}
var (
	// ErrUsage indicates a command line usage error: wrong argument
	// count or a malformed/pre-existing output directory.
	ErrUsage = errors.New("usage error")

	// ErrParseResidual indicates the tokenizer left unclassified
	// content behind. This is the tool's data-integrity guard and is
	// always fatal.
	ErrParseResidual = errors.New("unparsed schema content")

	// ErrFilesystem indicates a directory, file, or symlink operation
	// failed during export.
	ErrFilesystem = errors.New("filesystem operation failed")
)

// ResidualError reports the content left over after tokenization.
// It unwraps to ErrParseResidual.
type ResidualError struct {
	// Residual is the leftover text after comment and whitespace
	// stripping.
	Residual string
}

func (e *ResidualError) Error() string {
	preview := e.Residual
	if len(preview) > MaxResidualPreviewLength {
		preview = preview[:MaxResidualPreviewLength] + "..."
	}
	return fmt.Sprintf("unparsed schema content: %q", preview)
}

func (e *ResidualError) Unwrap() error {
	return ErrParseResidual
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known
// errors, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrParseResidual):
		return ExitParseResidual
	case errors.Is(err, ErrFilesystem):
		return ExitFilesystem
	}

	return ExitGeneralError
}

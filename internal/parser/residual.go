package parser

import (
	"strings"
	"unicode"

	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

// commentMarker begins a comment line in the dump.
const commentMarker = "--"

// ValidateResidual enforces the parse-completeness invariant: after
// comment lines are dropped and whitespace is collapsed, nothing may
// remain of the text the tokenizer left behind. A non-empty result
// means the dump contains content the tokenizer could not classify,
// which is a fatal parse failure.
func ValidateResidual(residual string) error {
	stripped := stripCommentLines(residual)
	if collapsed := collapseWhitespace(stripped); collapsed != "" {
		return &parseschema.ResidualError{Residual: collapsed}
	}
	return nil
}

// stripCommentLines drops every line whose first non-blank characters
// are the comment marker.
func stripCommentLines(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), commentMarker) {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// collapseWhitespace folds every whitespace run into a single space and
// trims the result.
func collapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastWasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

package parser

import (
	"regexp"
	"strings"

	"github.com/gluefinance/parse-schema/internal/checksum"
	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

// bodyIntro locates the keyword that introduces a definition body,
// anchored on the sigil that may open a dollar-quote token.
var bodyIntro = regexp.MustCompile(`\b(?:AS|DO)\s+\$`)

// Extractor isolates dollar-quoted bodies before tokenization.
type Extractor struct {
	calc   checksum.Calculator
	logger parseschema.Logger
}

// NewExtractor creates a body extractor.
// Panics if calc or logger is nil.
func NewExtractor(calc checksum.Calculator, logger parseschema.Logger) *Extractor {
	if calc == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Extractor{calc: calc, logger: logger}
}

// Extract replaces every dollar-quoted region in input with the digest
// of its content and returns the modified text plus the digest -> body
// mapping. A region whose content already is a digest is left alone,
// which makes a second pass over already-processed text a no-op.
// Absence of any region is valid; the map comes back empty.
func (e *Extractor) Extract(input string) (string, parseschema.PlaceholderMap) {
	placeholders := make(parseschema.PlaceholderMap)

	var out strings.Builder
	out.Grow(len(input))

	rest := input
	for {
		loc := bodyIntro.FindStringIndex(rest)
		if loc == nil {
			break
		}

		tokStart := loc[1] - 1
		tok := dollarToken(rest, tokStart)
		if tok == "" {
			// Sigil without a token shape (e.g. a positional
			// parameter); move past it and keep scanning.
			out.WriteString(rest[:loc[1]])
			rest = rest[loc[1]:]
			continue
		}

		open := tokStart + len(tok)
		rel := strings.Index(rest[open:], tok)
		if rel < 0 {
			// Opening token with no matching close; not a region.
			out.WriteString(rest[:open])
			rest = rest[open:]
			continue
		}

		body := rest[open : open+rel]
		end := open + rel + len(tok)

		if checksum.IsDigest(body) {
			out.WriteString(rest[:end])
			rest = rest[end:]
			continue
		}

		digest := e.calc.SumString(body)
		placeholders[digest] = body

		out.WriteString(rest[:open])
		out.WriteString(digest)
		out.WriteString(tok)
		rest = rest[end:]

		e.logger.Marker(".")
	}

	out.WriteString(rest)
	return out.String(), placeholders
}

// dollarToken reads a dollar-quote token ($$ or $label$) starting at
// position i. The label may be empty; a non-empty label must be an
// identifier. Returns "" if the text at i does not form a token.
func dollarToken(s string, i int) string {
	if i >= len(s) || s[i] != '$' {
		return ""
	}

	j := i + 1
	for j < len(s) {
		ch := s[j]
		if ch == '$' {
			return s[i : j+1]
		}
		if j == i+1 {
			if !isLabelStart(ch) {
				return ""
			}
		} else if !isLabelContinue(ch) {
			return ""
		}
		j++
	}

	return ""
}

func isLabelStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isLabelContinue(ch byte) bool {
	return isLabelStart(ch) || (ch >= '0' && ch <= '9')
}

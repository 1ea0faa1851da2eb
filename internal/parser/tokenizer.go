package parser

import (
	"regexp"
	"strings"

	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

// stmtPattern matches one top-level statement:
//  1. start-of-line anchor,
//  2. a command phrase of uppercase words,
//  3. an optional schema qualifier (discarded),
//  4. an optionally quoted object name,
//  5. a body of non-terminator runs or single-quoted spans (a
//     terminator inside quotes does not end the statement),
//  6. the terminating semicolon.
//
// The grammar is intentionally permissive; completeness is enforced
// downstream by ValidateResidual.
var stmtPattern = regexp.MustCompile(`(?m)^((?:[A-Z]+,? )*[A-Z]+) (?:"?[a-z0-9_]+"?\.)?"?([a-z0-9_]+)"?((?:[^';]|'[^']*')*);`)

// placeholderPattern finds digest placeholders inside a captured
// statement so extracted bodies can be substituted back.
var placeholderPattern = regexp.MustCompile(`[0-9a-f]{32}`)

// Tokenizer peels top-level statements off the extracted dump text.
type Tokenizer struct {
	logger parseschema.Logger
}

// NewTokenizer creates a statement tokenizer.
// Panics if logger is nil.
func NewTokenizer(logger parseschema.Logger) *Tokenizer {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Tokenizer{logger: logger}
}

// Tokenize scans text front to back with an explicit cursor, producing
// one ObjectRecord per matched statement. Matches may skip leading
// non-matching text; every skipped span accumulates into the returned
// residual. Extracted bodies are reinlined into each record before it
// is appended, so record bodies match the original dump byte-for-byte.
//
// Tokenize never fails: when no further statement matches, the loop
// ends and the rest of the text joins the residual.
func (t *Tokenizer) Tokenize(text string, placeholders parseschema.PlaceholderMap) ([]parseschema.ObjectRecord, string) {
	var records []parseschema.ObjectRecord
	var residual strings.Builder

	cursor := 0
	for {
		loc := stmtPattern.FindStringSubmatchIndex(text[cursor:])
		if loc == nil {
			break
		}

		residual.WriteString(text[cursor : cursor+loc[0]])

		stmt := text[cursor+loc[0] : cursor+loc[1]]
		phrase := text[cursor+loc[2] : cursor+loc[3]]
		name := text[cursor+loc[4] : cursor+loc[5]]

		records = append(records, parseschema.ObjectRecord{
			Name: name,
			Type: normalizeType(phrase),
			Body: reinline(stmt, placeholders),
		})
		t.logger.Marker(".")

		cursor += loc[1]
	}

	residual.WriteString(text[cursor:])
	return records, residual.String()
}

// normalizeType folds a command phrase into a type string. The leading
// command verb is dropped when qualifier words follow it, so that
// "CREATE TABLE" and "ALTER TABLE" both group under TABLE; a one-word
// command is its own type. Remaining words are joined with underscores.
func normalizeType(phrase string) string {
	words := strings.FieldsFunc(phrase, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(words) > 1 {
		words = words[1:]
	}
	return strings.Join(words, "_")
}

// reinline substitutes extracted bodies back into a captured statement.
// Digest-shaped spans not present in the map are left untouched.
func reinline(stmt string, placeholders parseschema.PlaceholderMap) string {
	if len(placeholders) == 0 {
		return stmt
	}
	return placeholderPattern.ReplaceAllStringFunc(stmt, func(digest string) string {
		if body, ok := placeholders[digest]; ok {
			return body
		}
		return digest
	})
}

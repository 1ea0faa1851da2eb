// Package parser implements the two-pass decomposition of a schema dump
// into top-level object records.
//
// The first pass (Extractor) isolates dollar-quoted function bodies so
// that their content cannot be mistaken for statement boundaries: each
// body is replaced with the digest of its content and the mapping
// digest -> body is kept aside. The second pass (Tokenizer) peels
// statements off the modified text front to back, reinlining the
// extracted bodies into each captured statement. Whatever the tokenizer
// could not classify is the residual; ValidateResidual turns a
// non-empty residual (after comment and whitespace stripping) into a
// fatal error rather than silently dropping schema content.
//
// Pipeline sequences the three stages with immutable intermediate
// values; there is no shared mutable state between them beyond the
// read-only placeholder map.
package parser

// Package checksum provides content digests for the schema splitter.
//
// Digests serve two roles:
//
//   - Placeholder keys: the body extractor replaces each dollar-quoted
//     function body with the digest of its content, and the tokenizer
//     substitutes the original back before records are finalized.
//   - Checksum manifest: the exporter records the digest of each
//     per-name aggregate file in checksums.txt so successive dumps can
//     be compared name-by-name.
//
// The digest's textual form (32 lowercase hex characters) is disjoint
// from the dollar-quote token grammar, which makes a second extraction
// pass over already-processed text a no-op.
//
// # Thread Safety
//
// MD5 is safe for concurrent use by multiple goroutines.
package checksum

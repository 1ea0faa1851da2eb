// Package parseschema defines the public types and contracts of the
// parse-schema tool: the object records produced by the parsing core,
// the logging interface, sentinel errors, and exit codes.
package parseschema

// ObjectRecord is one top-level statement peeled off the schema dump.
// Records are immutable after creation and keep their original dump order.
type ObjectRecord struct {
	// Name is the object identifier with any quoting and schema
	// qualifier stripped (e.g. "users", not "public"."users").
	Name string

	// Type is the normalized command type: the qualifier words of the
	// command phrase joined with underscores (TABLE, FUNCTION,
	// TABLE_ONLY, ...). A one-word command is its own type.
	Type string

	// Body is the full statement text, terminator included, with any
	// extracted function bodies reinlined byte-for-byte.
	Body string
}

// PlaceholderMap maps a content digest (fixed-length lowercase hex) to
// the original body-quoted content it replaced. Built once by the body
// extractor and read-only afterward.
type PlaceholderMap map[string]string

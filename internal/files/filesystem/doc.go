// Package filesystem provides a filesystem abstraction covering the
// operations the exporter performs: non-overwriting directory
// creation, file writes, relative symbolic links, and reads.
//
// Two implementations are provided:
//   - OSFileSystem: thin wrapper around the os package
//   - MemoryFileSystem: in-memory implementation for tests
package filesystem

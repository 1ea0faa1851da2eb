// Package files provides file-related functionality organized into
// sub-packages.
//
//   - filesystem: Filesystem abstraction interface and implementations
//     (OS and in-memory), covering the write operations the exporter
//     performs: non-overwriting directory creation, file writes, and
//     relative symbolic links.
package files

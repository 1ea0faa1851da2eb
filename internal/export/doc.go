// Package export writes the decomposed schema to disk: one numbered
// file per object under changes/, relative symlink indexes by name and
// by type, per-name and per-type aggregate files, and an MD5 checksum
// manifest over the per-name aggregates.
//
// The directory and symlink layout is a denormalized view derived
// entirely from the record sequence; it is never read back as
// authoritative state.
package export

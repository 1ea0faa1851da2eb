package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
)

// DigestLength is the length of a hex-encoded digest produced by Sum.
const DigestLength = 32

// digestPattern matches exactly one hex-encoded digest. The digest
// alphabet (lowercase hex) deliberately cannot form a dollar-quote
// token, so a digest substituted into the dump is never re-matched as
// a body-quoted region.
var digestPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// Calculator is an interface for computing content digests.
// This abstraction allows the digest algorithm to be swapped without
// touching the parser or exporter.
type Calculator interface {
	// Sum computes the hex-encoded digest of content.
	Sum(content []byte) string

	// SumString computes the hex-encoded digest of a string.
	SumString(content string) string
}

// MD5 implements digest calculation using MD5. The digest is used as a
// placeholder key for extracted function bodies and as the aggregate
// checksum recorded in checksums.txt; it identifies content for
// diffing, not for security.
//
// MD5 is a zero-size type and is safe for concurrent use by multiple
// goroutines.
type MD5 struct{}

// New creates a new MD5 based calculator.
func New() MD5 {
	return MD5{}
}

// Sum computes the MD5 digest of content, hex-encoded.
func (c MD5) Sum(content []byte) string {
	hash := md5.Sum(content)
	return hex.EncodeToString(hash[:])
}

// SumString computes the MD5 digest of a string, hex-encoded.
func (c MD5) SumString(content string) string {
	return c.Sum([]byte(content))
}

// IsDigest reports whether s has the exact shape of a digest produced
// by Sum: 32 lowercase hex characters.
func IsDigest(s string) bool {
	return digestPattern.MatchString(s)
}

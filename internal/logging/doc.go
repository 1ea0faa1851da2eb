// Package logging provides concrete implementations of the
// parseschema.Logger interface.
package logging

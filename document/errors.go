// Package document provides shared types for the parsed reference
// documents (collection index, resource-model schema, concept catalog)
// and the tabular input.
package document

import "fmt"

// ParseError reports a structurally malformed source document.
// A ParseError is fatal for the run: nothing downstream of a broken
// document can be trusted, so no partial result is returned alongside it.
type ParseError struct {
	// Path identifies the source document.
	Path string
	// Err is the underlying decoding error.
	Err error
}

// NewParseError wraps err with the source path.
func NewParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

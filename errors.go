package xhtml2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument   = errors.New("document content cannot be empty")
	ErrInvalidDocument = errors.New("document cannot be parsed")
	ErrTransform       = errors.New("namespace transform failed")

	// Namespace policy validation errors.
	ErrInvalidPolicy = errors.New("invalid namespace policy")
)

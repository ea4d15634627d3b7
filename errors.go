package filingkit

import "errors"

// Sentinel errors for library operations.
var (
	// Style registry errors.
	ErrDuplicateStyle = errors.New("style already defined")
	ErrUnknownStyle   = errors.New("style not defined")

	// Document builder errors.
	ErrEmptyText      = errors.New("text content cannot be empty")
	ErrMalformedTable = errors.New("table row width does not match column list")
	ErrMarkup         = errors.New("inline markup parsing failed")

	// Page geometry validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Renderer errors.
	ErrRender = errors.New("document rendering failed")
)

package filingkit

import (
	"fmt"
	"strings"
	"time"
)

// Inch is one inch expressed in points, the unit used throughout.
const Inch = 72.0

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Margin bounds in points.
const (
	MinMargin     = 0.25 * Inch
	MaxMargin     = 3.0 * Inch
	DefaultMargin = 1.0 * Inch
)

// PageGeometry describes the page size and the four margins in points.
type PageGeometry struct {
	Size   string // "letter", "a4", "legal"
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// DefaultGeometry returns US letter pages with one-inch margins.
func DefaultGeometry() PageGeometry {
	return PageGeometry{
		Size:   PageSizeLetter,
		Top:    DefaultMargin,
		Bottom: DefaultMargin,
		Left:   DefaultMargin,
		Right:  DefaultMargin,
	}
}

// Validate checks that the geometry is renderable.
// Uses case-insensitive comparison for the size name.
func (g PageGeometry) Validate() error {
	if !isValidPageSize(g.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, g.Size)
	}
	for _, m := range []float64{g.Top, g.Bottom, g.Left, g.Right} {
		if m < MinMargin || m > MaxMargin {
			return fmt.Errorf("%w: %.2fpt (must be between %.2f and %.2f)", ErrInvalidMargin, m, MinMargin, MaxMargin)
		}
	}
	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// Metadata carries the document information dictionary values.
// Created pins the PDF creation date so that rendering the same document
// twice produces byte-identical output.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Created time.Time
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	renderer Renderer
}

// WithRenderer replaces the default PDF renderer, e.g. with a capturing
// fake in tests.
// Panics if r is nil (programmer error, similar to time.NewTicker).
func WithRenderer(r Renderer) Option {
	if r == nil {
		panic("filingkit: WithRenderer renderer must not be nil")
	}
	return func(s *Service) {
		s.cfg.renderer = r
	}
}

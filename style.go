package filingkit

import "fmt"

// Font family constants for the renderer's built-in faces.
const (
	FontTimes     = "times"
	FontHelvetica = "helvetica"
	FontCourier   = "courier"
)

// Alignment constants.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// Style is a named bundle of typographic attributes applied to blocks.
// All dimensions are in points. A Style is immutable once defined;
// blocks reference it by name.
type Style struct {
	Name         string
	FontFamily   string  // "times", "helvetica", "courier"
	FontStyle    string  // "" (regular), "B", "I", "BI"
	FontSize     float64
	LineHeight   float64 // leading; 0 means 1.2 x font size
	Alignment    string  // "left", "center", "right", "justify"
	LeftIndent   float64
	SpaceBefore  float64
	SpaceAfter   float64
	BulletIndent float64 // bullet glyph offset for bullet items
}

// Leading returns the effective line height.
func (s Style) Leading() float64 {
	if s.LineHeight > 0 {
		return s.LineHeight
	}
	return s.FontSize * 1.2
}

// StyleSheet is a registry of named styles. Styles are defined once and
// looked up by name when blocks are appended and rendered.
type StyleSheet struct {
	styles map[string]Style
}

// NewStyleSheet returns an empty registry.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{styles: make(map[string]Style)}
}

// Define registers st under st.Name.
// Fails with ErrDuplicateStyle if the name is already taken.
func (ss *StyleSheet) Define(st Style) (Style, error) {
	if st.Name == "" {
		return Style{}, fmt.Errorf("%w: empty name", ErrUnknownStyle)
	}
	if _, exists := ss.styles[st.Name]; exists {
		return Style{}, fmt.Errorf("%w: %q", ErrDuplicateStyle, st.Name)
	}
	ss.styles[st.Name] = st
	return st, nil
}

// DefineFrom registers a new style named name that inherits every unset
// attribute of overrides from the previously defined base style.
// Inheritance is shallow: the result is a complete standalone style, not
// a live link to base. Fails with ErrUnknownStyle if base is missing and
// ErrDuplicateStyle if name is already taken.
func (ss *StyleSheet) DefineFrom(name, base string, overrides Style) (Style, error) {
	parent, ok := ss.styles[base]
	if !ok {
		return Style{}, fmt.Errorf("%w: base %q", ErrUnknownStyle, base)
	}

	st := parent
	st.Name = name
	if overrides.FontFamily != "" {
		st.FontFamily = overrides.FontFamily
	}
	if overrides.FontStyle != "" {
		st.FontStyle = overrides.FontStyle
	}
	if overrides.FontSize > 0 {
		st.FontSize = overrides.FontSize
	}
	if overrides.LineHeight > 0 {
		st.LineHeight = overrides.LineHeight
	}
	if overrides.Alignment != "" {
		st.Alignment = overrides.Alignment
	}
	if overrides.LeftIndent > 0 {
		st.LeftIndent = overrides.LeftIndent
	}
	if overrides.SpaceBefore > 0 {
		st.SpaceBefore = overrides.SpaceBefore
	}
	if overrides.SpaceAfter > 0 {
		st.SpaceAfter = overrides.SpaceAfter
	}
	if overrides.BulletIndent > 0 {
		st.BulletIndent = overrides.BulletIndent
	}

	return ss.Define(st)
}

// Lookup resolves a style by name.
func (ss *StyleSheet) Lookup(name string) (Style, bool) {
	st, ok := ss.styles[name]
	return st, ok
}

// Len reports the number of defined styles.
func (ss *StyleSheet) Len() int {
	return len(ss.styles)
}

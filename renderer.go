package filingkit

// Renderer turns a finished document into the bytes of a paginated
// output artifact. Rendering is a pure function of the document's
// geometry, styles, and block sequence: blocks are consumed exactly once,
// in order, and an explicit page break starts a new page regardless of
// remaining space.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*PDFRenderer)(nil)

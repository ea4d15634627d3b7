package filingkit

// BlockKind discriminates the Block variants.
type BlockKind uint8

// Block variants, in the order they were introduced.
const (
	BlockTitle BlockKind = iota
	BlockHeading
	BlockParagraph
	BlockBulletItem
	BlockTable
	BlockSpacer
	BlockPageBreak
)

// String returns the lowercase variant name.
func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockBulletItem:
		return "bullet"
	case BlockTable:
		return "table"
	case BlockSpacer:
		return "spacer"
	case BlockPageBreak:
		return "pagebreak"
	}
	return "unknown"
}

// Span is one run of text with uniform inline attributes, or an explicit
// line break (Break true, Text empty).
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Break  bool
}

// Table is the payload of a BlockTable block: a rectangular grid of cell
// text with declared column widths (points) and presentation rules.
// Cell text may carry the same limited inline markup as paragraphs;
// a fully bold cell is rendered with a bold cell font.
type Table struct {
	ColWidths []float64
	Rows      [][]string
	Rules     TableRules
}

// TableRules are the border and shading options a table carries.
type TableRules struct {
	HeaderRow bool // first row repeats as a header
	Shaded    bool // shade the header row
	Bordered  bool // draw the cell grid
}

// Block is one discrete unit of document content: a tagged variant with a
// style reference and variant-specific payload. Blocks are write-once;
// nothing mutates a Block after it is appended.
type Block struct {
	Kind  BlockKind
	Style string // style name; empty for spacer and page break

	// Text variants (title, heading, paragraph, bullet item).
	Text  string // raw source text
	Spans []Span // parsed inline runs

	// Variant payloads.
	Table  *Table
	Height float64 // spacer height in points
}

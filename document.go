package filingkit

import "fmt"

// Document is the complete ordered block sequence plus geometry and
// metadata for one output artifact. Blocks are appended strictly in final
// presentation order; insertion order is render order. A Document is
// built once, rendered once, and discarded.
type Document struct {
	Geometry PageGeometry
	Meta     Metadata

	styles *StyleSheet
	blocks []Block
}

// NewDocument creates an empty document. A nil style sheet gets a fresh
// empty registry, which makes every styled append fail until styles are
// defined.
func NewDocument(geo PageGeometry, meta Metadata, styles *StyleSheet) *Document {
	if styles == nil {
		styles = NewStyleSheet()
	}
	return &Document{
		Geometry: geo,
		Meta:     meta,
		styles:   styles,
	}
}

// Styles returns the document's style registry.
func (d *Document) Styles() *StyleSheet {
	return d.styles
}

// Blocks returns the block sequence in insertion order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Append adds one block to the end of the sequence.
// Styled blocks must reference a defined style (ErrUnknownStyle) and
// table blocks must be rectangular against their declared column widths
// (ErrMalformedTable).
func (d *Document) Append(b Block) error {
	switch b.Kind {
	case BlockSpacer, BlockPageBreak:
		// No style reference.
	default:
		if _, ok := d.styles.Lookup(b.Style); !ok {
			return fmt.Errorf("%w: %q (block %d, %s)", ErrUnknownStyle, b.Style, len(d.blocks), b.Kind)
		}
	}

	if b.Kind == BlockTable {
		if err := validateTable(b.Table); err != nil {
			return fmt.Errorf("%w (block %d)", err, len(d.blocks))
		}
	}

	d.blocks = append(d.blocks, b)
	return nil
}

// AppendTitle appends a title block with parsed inline markup.
func (d *Document) AppendTitle(text, style string) error {
	return d.appendText(BlockTitle, text, style)
}

// AppendHeading appends a heading block with parsed inline markup.
func (d *Document) AppendHeading(text, style string) error {
	return d.appendText(BlockHeading, text, style)
}

// AppendParagraph appends a paragraph block with parsed inline markup.
func (d *Document) AppendParagraph(text, style string) error {
	return d.appendText(BlockParagraph, text, style)
}

// AppendBulletList expands items into one bullet-item block per entry,
// preserving input order. The bullet glyph is applied at render time.
func (d *Document) AppendBulletList(items []string, style string) error {
	for _, item := range items {
		if err := d.appendText(BlockBulletItem, item, style); err != nil {
			return err
		}
	}
	return nil
}

// AppendTable appends a table block.
func (d *Document) AppendTable(t Table, style string) error {
	return d.Append(Block{Kind: BlockTable, Style: style, Table: &t})
}

// AppendSpacer appends vertical whitespace of h points.
func (d *Document) AppendSpacer(h float64) error {
	return d.Append(Block{Kind: BlockSpacer, Height: h})
}

// AppendPageBreak forces a new page regardless of remaining space.
func (d *Document) AppendPageBreak() error {
	return d.Append(Block{Kind: BlockPageBreak})
}

func (d *Document) appendText(kind BlockKind, text, style string) error {
	if text == "" {
		return fmt.Errorf("%w (block %d, %s)", ErrEmptyText, len(d.blocks), kind)
	}
	spans, err := ParseSpans(text)
	if err != nil {
		return err
	}
	return d.Append(Block{Kind: kind, Style: style, Text: text, Spans: spans})
}

// validateTable checks the rectangular-grid invariant.
func validateTable(t *Table) error {
	if t == nil || len(t.ColWidths) == 0 {
		return fmt.Errorf("%w: no columns declared", ErrMalformedTable)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.ColWidths) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedTable, i, len(row), len(t.ColWidths))
		}
	}
	return nil
}

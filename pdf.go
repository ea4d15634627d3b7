package filingkit

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/table"
)

// bulletGlyph prefixes bullet-item blocks.
const bulletGlyph = "•"

// fallbackCreated pins the PDF creation date when metadata carries none,
// keeping renders byte-identical.
var fallbackCreated = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer renders documents to PDF with the gofpdf engine, which owns
// pagination, text flow within measured line widths, and table layout.
type PDFRenderer struct{}

// NewPDFRenderer creates the default rendering collaborator.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF bytes for doc.
func (r *PDFRenderer) Render(doc *Document) ([]byte, error) {
	if err := doc.Geometry.Validate(); err != nil {
		return nil, err
	}

	st := newPdfState(doc)
	for i, b := range doc.Blocks() {
		if err := st.renderBlock(b); err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
	}
	if st.pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, st.pdf.Error())
	}

	var buf bytes.Buffer
	if err := st.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// pdfState carries the engine handle and per-render context.
type pdfState struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string // UTF-8 to the core-font codepage
	geo    PageGeometry
	styles *StyleSheet
}

func newPdfState(doc *Document) *pdfState {
	geo := doc.Geometry
	pdf := gofpdf.New("P", "pt", pageSizeName(geo.Size), "")
	pdf.SetMargins(geo.Left, geo.Top, geo.Right)
	pdf.SetAutoPageBreak(true, geo.Bottom)

	meta := doc.Meta
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}
	created := meta.Created
	if created.IsZero() {
		created = fallbackCreated
	}
	pdf.SetCreationDate(created.UTC())

	pdf.AddPage()

	return &pdfState{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		geo:    geo,
		styles: doc.Styles(),
	}
}

func (s *pdfState) renderBlock(b Block) error {
	switch b.Kind {
	case BlockPageBreak:
		s.pdf.AddPage()
		return nil
	case BlockSpacer:
		s.pdf.Ln(b.Height)
		return nil
	}

	st, ok := s.styles.Lookup(b.Style)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, b.Style)
	}

	if b.Kind == BlockTable {
		return s.renderTable(b, st)
	}
	s.renderText(b, st)
	return nil
}

// renderText lays out one text block: wraps the span runs to the content
// width, then places each line according to the style's alignment.
// Bullet items get a hanging indent with the glyph on the first line.
func (s *pdfState) renderText(b Block, st Style) {
	s.spaceBefore(st)

	indent := st.LeftIndent
	contentW := s.contentWidth() - indent
	leading := st.Leading()

	lines := s.wrapSpans(st, b.Spans, contentW)

	for i, line := range lines {
		s.breakPageIfNeeded(leading)

		if b.Kind == BlockBulletItem && i == 0 {
			s.drawBullet(st, leading)
		}

		s.drawLine(st, line, indent, leading)
	}

	if st.SpaceAfter > 0 {
		s.pdf.Ln(st.SpaceAfter)
	}
}

// spaceBefore applies the style's space-before unless the cursor sits at
// the top of a fresh page, where leading space collapses.
func (s *pdfState) spaceBefore(st Style) {
	if st.SpaceBefore <= 0 {
		return
	}
	if s.pdf.GetY() > s.geo.Top+0.1 {
		s.pdf.Ln(st.SpaceBefore)
	}
}

func (s *pdfState) contentWidth() float64 {
	pageW, _ := s.pdf.GetPageSize()
	return pageW - s.geo.Left - s.geo.Right
}

// breakPageIfNeeded starts a new page when the next line would cross the
// bottom margin. Lines are placed explicitly, so overflow is checked here
// rather than left to the engine mid-line.
func (s *pdfState) breakPageIfNeeded(leading float64) {
	_, pageH := s.pdf.GetPageSize()
	if s.pdf.GetY()+leading > pageH-s.geo.Bottom {
		s.pdf.AddPage()
	}
}

// drawBullet places the bullet glyph in the gutter between the style's
// bullet indent and left indent.
func (s *pdfState) drawBullet(st Style, leading float64) {
	gutter := st.LeftIndent - st.BulletIndent
	if gutter <= 0 {
		gutter = st.FontSize
	}
	s.setFont(st, false, false)
	s.pdf.SetX(s.geo.Left + st.BulletIndent)
	s.pdf.CellFormat(gutter, leading, s.tr(bulletGlyph), "", 0, "L", false, 0, "")
}

// lineFrag is a run of uniformly styled text within one laid-out line.
type lineFrag struct {
	text   string
	bold   bool
	italic bool
	width  float64
}

// drawLine places one wrapped line at the alignment the style asks for.
// Justified styles render flush left; inline emphasis takes precedence
// over word-spacing fidelity with this engine.
func (s *pdfState) drawLine(st Style, line []lineFrag, indent, leading float64) {
	lineW := 0.0
	for _, f := range line {
		lineW += f.width
	}

	pageW, _ := s.pdf.GetPageSize()
	x := s.geo.Left + indent
	switch st.Alignment {
	case AlignCenter:
		x += (s.contentWidth() - indent - lineW) / 2
	case AlignRight:
		x = pageW - s.geo.Right - lineW
	}

	s.pdf.SetX(x)
	for _, f := range line {
		s.setFont(st, f.bold, f.italic)
		s.pdf.CellFormat(f.width, leading, f.text, "", 0, "L", false, 0, "")
	}
	s.pdf.Ln(leading)
}

// wrapSpans splits span runs into lines no wider than avail, measuring
// each word with the font it will be drawn in. Explicit break spans force
// a new line.
func (s *pdfState) wrapSpans(st Style, spans []Span, avail float64) [][]lineFrag {
	var lines [][]lineFrag
	var cur []lineFrag
	curW := 0.0

	flush := func() {
		lines = append(lines, cur)
		cur = nil
		curW = 0
	}

	push := func(text string, bold, italic bool, w float64) {
		if n := len(cur); n > 0 && cur[n-1].bold == bold && cur[n-1].italic == italic {
			cur[n-1].text += text
			cur[n-1].width += w
			return
		}
		cur = append(cur, lineFrag{text: text, bold: bold, italic: italic, width: w})
	}

	// Spaces at span boundaries (e.g. "before " then a bold run) carry
	// over as a pending separator; runs of spaces collapse to one.
	pendingSpace := false

	for _, sp := range spans {
		if sp.Break {
			flush()
			pendingSpace = false
			continue
		}

		s.setFont(st, sp.Bold, sp.Italic)
		spaceW := s.pdf.GetStringWidth(s.tr(" "))

		for i, word := range strings.Split(sp.Text, " ") {
			// An empty field marks a leading, trailing, or doubled space.
			if word == "" {
				pendingSpace = true
				continue
			}
			text := s.tr(word)
			w := s.pdf.GetStringWidth(text)

			sep := 0.0
			if (pendingSpace || i > 0) && len(cur) > 0 {
				sep = spaceW
			}

			if len(cur) > 0 && curW+sep+w > avail {
				flush()
				sep = 0
			}
			if sep > 0 {
				text = " " + text
				w += sep
			}
			push(text, sp.Bold, sp.Italic, w)
			curW += w
			pendingSpace = false
		}
	}

	if len(cur) > 0 {
		flush()
	}
	return lines
}

// renderTable draws a table block with the table package; the engine
// handles row heights, cell wrapping, and page breaks.
func (s *pdfState) renderTable(b Block, st Style) error {
	s.spaceBefore(st)

	t := table.New(s.pdf)
	t.SetColumnWidths(b.Table.ColWidths...)

	cellFont := table.FontSpec{
		Family: fontFamilyName(st.FontFamily),
		Style:  st.FontStyle,
		Size:   st.FontSize,
	}
	ts := table.TableStyle{
		CellPadding: table.UniformPadding(4),
		CellFont:    &cellFont,
	}
	if b.Table.Rules.Bordered {
		ts.Border = &table.BorderStyle{Width: 0.25, Color: table.RGBColor{R: 0, G: 0, B: 0}}
	}

	rows := b.Table.Rows
	if b.Table.Rules.HeaderRow && len(rows) > 0 {
		header := table.CellStyle{
			Font: &table.FontSpec{Family: cellFont.Family, Style: "B", Size: cellFont.Size},
		}
		if b.Table.Rules.Shaded {
			header.FillColor = &table.RGBColor{R: 240, G: 240, B: 240}
		}
		ts.HeaderStyle = &header

		hr := t.AddHeaderRow()
		for _, cell := range rows[0] {
			text, _, err := s.cellText(cell)
			if err != nil {
				return err
			}
			hr.AddCell(text)
		}
		rows = rows[1:]
	}

	t.SetStyle(ts)

	boldFont := table.FontSpec{Family: cellFont.Family, Style: "B", Size: cellFont.Size}
	for _, row := range rows {
		r := t.AddRow()
		for _, cell := range row {
			text, bold, err := s.cellText(cell)
			if err != nil {
				return err
			}
			c := r.AddCell(text)
			if bold {
				c.SetStyle(table.CellStyle{Font: &boldFont})
			}
		}
	}

	if err := t.Render(); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	if st.SpaceAfter > 0 {
		s.pdf.Ln(st.SpaceAfter)
	}
	return nil
}

// cellText resolves a cell's inline markup to flat text. Cells cannot
// carry mixed runs, so a fully bold cell maps to a bold cell font and
// everything else renders regular.
func (s *pdfState) cellText(cell string) (text string, bold bool, err error) {
	spans, err := ParseSpans(cell)
	if err != nil {
		return "", false, err
	}
	return s.tr(flattenSpans(spans)), allBold(spans), nil
}

func (s *pdfState) setFont(st Style, bold, italic bool) {
	s.pdf.SetFont(fontFamilyName(st.FontFamily), mergeFontStyle(st.FontStyle, bold, italic), st.FontSize)
}

// mergeFontStyle combines the style's base font style with span emphasis.
func mergeFontStyle(base string, bold, italic bool) string {
	b := bold || strings.Contains(base, "B")
	i := italic || strings.Contains(base, "I")
	style := ""
	if b {
		style += "B"
	}
	if i {
		style += "I"
	}
	return style
}

// fontFamilyName maps style families onto the engine's core font names.
func fontFamilyName(family string) string {
	switch strings.ToLower(family) {
	case FontTimes:
		return "Times"
	case FontCourier:
		return "Courier"
	default:
		return "Helvetica"
	}
}

// pageSizeName maps geometry size names onto the engine's page formats.
func pageSizeName(size string) string {
	switch strings.ToLower(size) {
	case PageSizeA4:
		return "A4"
	case PageSizeLegal:
		return "Legal"
	default:
		return "Letter"
	}
}

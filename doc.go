// Package filingkit assembles paginated legal-filing PDFs from an ordered
// sequence of typed content blocks and a registry of named styles.
//
// # Quick Start
//
// Define styles, append blocks in presentation order, and render once:
//
//	styles := filingkit.NewStyleSheet()
//	styles.Define(filingkit.Style{
//	    Name:       "body",
//	    FontFamily: filingkit.FontTimes,
//	    FontSize:   10.5,
//	    SpaceAfter: 6,
//	})
//
//	doc := filingkit.NewDocument(filingkit.DefaultGeometry(), filingkit.Metadata{
//	    Title: "Complaint",
//	}, styles)
//	doc.AppendHeading("I. INTRODUCTION", "body")
//	doc.AppendParagraph("Plaintiff alleges as follows.", "body")
//
//	svc := filingkit.New()
//	err := svc.RenderFile(ctx, doc, "complaint.pdf")
//
// # Assembly Pipeline
//
// The pipeline is three strictly sequential stages:
//
//  1. Style definition (StyleSheet with one-level base inheritance)
//  2. Block sequence construction (append order is render order)
//  3. A single render via the gofpdf engine, which owns pagination,
//     line wrapping, and table layout
//
// Text blocks carry limited inline markup (**bold**, *italic*, newlines
// as hard line breaks), parsed into span runs at append time.
//
// # Ready-made documents
//
// The internal/content package embeds the three filing documents
// (complaint, cover sheet, fee-waiver request) as data; the filingkit
// command renders them by name.
package filingkit

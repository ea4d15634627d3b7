// Package content carries the filing documents as data: each document is
// an embedded YAML definition (styles plus an ordered block list) compiled
// into a filingkit.Document. Content and assembly logic stay decoupled;
// changing a filing's text never touches Go code.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	filingkit "github.com/filingkit/filingkit"
	"github.com/filingkit/filingkit/internal/yamlutil"
)

// Sentinel errors for content operations.
var (
	ErrUnknownDocument = errors.New("unknown document")
	ErrContentParse    = errors.New("failed to parse document content")
	ErrBadDefinition   = errors.New("invalid document definition")
)

// dateLayout is the metadata date format used in definitions.
const dateLayout = "2006-01-02"

// Filing is one loadable document: its compiled block sequence plus the
// fixed default output filename.
type Filing struct {
	Name          string
	Title         string
	DefaultOutput string
	Document      *filingkit.Document
}

// Definition is the YAML schema of one document.
type Definition struct {
	Output string     `yaml:"output"`
	Meta   MetaDef    `yaml:"meta"`
	Page   PageDef    `yaml:"page"`
	Styles []StyleDef `yaml:"styles"`
	Blocks []BlockDef `yaml:"blocks"`
}

// MetaDef maps onto filingkit.Metadata. Date pins the creation date.
type MetaDef struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Subject string `yaml:"subject"`
	Date    string `yaml:"date"` // YYYY-MM-DD
}

// PageDef declares page size and margins in inches.
type PageDef struct {
	Size    string     `yaml:"size"`
	Margins MarginsDef `yaml:"marginsIn"`
}

// MarginsDef holds the four margins in inches.
type MarginsDef struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// StyleDef declares one named style, optionally inheriting a base.
// Dimensions are points, matching filingkit.Style.
type StyleDef struct {
	Name         string  `yaml:"name"`
	Base         string  `yaml:"base"`
	Font         string  `yaml:"font"`
	FontStyle    string  `yaml:"fontStyle"`
	Size         float64 `yaml:"size"`
	Leading      float64 `yaml:"leading"`
	Align        string  `yaml:"align"`
	Indent       float64 `yaml:"indent"`
	SpaceBefore  float64 `yaml:"spaceBefore"`
	SpaceAfter   float64 `yaml:"spaceAfter"`
	BulletIndent float64 `yaml:"bulletIndent"`
}

// BlockDef declares one content block. Type selects the variant and which
// other fields apply.
type BlockDef struct {
	Type  string `yaml:"type"` // title, heading, paragraph, bullets, table, spacer, pagebreak
	Style string `yaml:"style,omitempty"`
	Text  string `yaml:"text,omitempty"`

	// bullets
	Items []string `yaml:"items,omitempty"`

	// table
	WidthsIn  []float64  `yaml:"widthsIn,omitempty"`
	Rows      [][]string `yaml:"rows,omitempty"`
	Bordered  bool       `yaml:"bordered,omitempty"`
	HeaderRow bool       `yaml:"headerRow,omitempty"`
	Shaded    bool       `yaml:"shaded,omitempty"`

	// spacer
	Height float64 `yaml:"height,omitempty"`
}

// Names lists the available document names in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(documentsFS, "documents")
	if err != nil {
		// The embed is part of the build; a missing directory is a
		// packaging bug, not a runtime condition.
		panic(fmt.Sprintf("content: embedded documents unavailable: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load compiles the named document definition.
// Fails with ErrUnknownDocument when no definition with that name exists.
func Load(name string) (*Filing, error) {
	data, err := fs.ReadFile(documentsFS, "documents/"+name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have: %s)", ErrUnknownDocument, name, strings.Join(Names(), ", "))
	}

	var def Definition
	if err := yamlutil.UnmarshalStrict(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrContentParse, name, err)
	}

	doc, err := Compile(&def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Filing{
		Name:          name,
		Title:         def.Meta.Title,
		DefaultOutput: def.Output,
		Document:      doc,
	}, nil
}

// Compile turns a definition into a document: styles are defined first
// (base styles before their dependents, in listed order), then blocks are
// appended in listed order.
func Compile(def *Definition) (*filingkit.Document, error) {
	if def.Output == "" {
		return nil, fmt.Errorf("%w: missing output filename", ErrBadDefinition)
	}

	meta := filingkit.Metadata{
		Title:   def.Meta.Title,
		Author:  def.Meta.Author,
		Subject: def.Meta.Subject,
	}
	if def.Meta.Date != "" {
		created, err := time.Parse(dateLayout, def.Meta.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: meta.date: %v", ErrBadDefinition, err)
		}
		meta.Created = created
	}

	doc := filingkit.NewDocument(geometry(def.Page), meta, filingkit.NewStyleSheet())

	for _, sd := range def.Styles {
		if err := defineStyle(doc.Styles(), sd); err != nil {
			return nil, err
		}
	}

	for i, bd := range def.Blocks {
		if err := appendBlock(doc, bd); err != nil {
			return nil, fmt.Errorf("blocks[%d]: %w", i, err)
		}
	}

	return doc, nil
}

func geometry(p PageDef) filingkit.PageGeometry {
	geo := filingkit.DefaultGeometry()
	if p.Size != "" {
		geo.Size = p.Size
	}
	if p.Margins.Top > 0 {
		geo.Top = p.Margins.Top * filingkit.Inch
	}
	if p.Margins.Bottom > 0 {
		geo.Bottom = p.Margins.Bottom * filingkit.Inch
	}
	if p.Margins.Left > 0 {
		geo.Left = p.Margins.Left * filingkit.Inch
	}
	if p.Margins.Right > 0 {
		geo.Right = p.Margins.Right * filingkit.Inch
	}
	return geo
}

func defineStyle(ss *filingkit.StyleSheet, sd StyleDef) error {
	st := filingkit.Style{
		Name:         sd.Name,
		FontFamily:   sd.Font,
		FontStyle:    sd.FontStyle,
		FontSize:     sd.Size,
		LineHeight:   sd.Leading,
		Alignment:    sd.Align,
		LeftIndent:   sd.Indent,
		SpaceBefore:  sd.SpaceBefore,
		SpaceAfter:   sd.SpaceAfter,
		BulletIndent: sd.BulletIndent,
	}

	var err error
	if sd.Base != "" {
		_, err = ss.DefineFrom(sd.Name, sd.Base, st)
	} else {
		_, err = ss.Define(st)
	}
	if err != nil {
		return fmt.Errorf("styles: %w", err)
	}
	return nil
}

func appendBlock(doc *filingkit.Document, bd BlockDef) error {
	switch bd.Type {
	case "title":
		return doc.AppendTitle(bd.Text, bd.Style)
	case "heading":
		return doc.AppendHeading(bd.Text, bd.Style)
	case "paragraph":
		return doc.AppendParagraph(bd.Text, bd.Style)
	case "bullets":
		return doc.AppendBulletList(bd.Items, bd.Style)
	case "table":
		widths := make([]float64, len(bd.WidthsIn))
		for i, w := range bd.WidthsIn {
			widths[i] = w * filingkit.Inch
		}
		return doc.AppendTable(filingkit.Table{
			ColWidths: widths,
			Rows:      bd.Rows,
			Rules: filingkit.TableRules{
				Bordered:  bd.Bordered,
				HeaderRow: bd.HeaderRow,
				Shaded:    bd.Shaded,
			},
		}, bd.Style)
	case "spacer":
		return doc.AppendSpacer(bd.Height)
	case "pagebreak":
		return doc.AppendPageBreak()
	default:
		return fmt.Errorf("%w: unknown block type %q", ErrBadDefinition, bd.Type)
	}
}

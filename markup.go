package filingkit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	xhtml "golang.org/x/net/html"
)

// inlineMarkdown renders the limited inline markup (bold, italic, line
// break) supported in text blocks. The parser is stripped down to
// paragraphs and star emphasis: filing text is full of numbered
// paragraphs ("1. Plaintiff...") and ruled blanks ("____") that full
// markdown block parsing would swallow.
var inlineMarkdown = goldmark.New(
	goldmark.WithParser(parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 100),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewEmphasisParser(), 100),
		),
	)),
	goldmark.WithRendererOptions(
		html.WithHardWraps(), // Treat newlines as <br>
		html.WithXHTML(),     // Self-closing tags
	),
)

// ParseSpans converts text with limited inline markup into span runs:
// **bold**, *italic*, and newlines as hard line breaks. The text is
// rendered to an HTML fragment and the fragment is tokenized; only
// strong/em/b/i toggle attributes and br/paragraph boundaries become
// explicit breaks. Unknown tags contribute their text content only.
func ParseSpans(text string) ([]Span, error) {
	// Underscores stay literal (signature and form blanks); emphasis is
	// star-delimited only.
	escaped := strings.ReplaceAll(text, "_", `\_`)

	var buf bytes.Buffer
	if err := inlineMarkdown.Convert([]byte(escaped), &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkup, err)
	}
	return tokenizeFragment(&buf), nil
}

// tokenizeFragment walks the rendered HTML fragment and accumulates span
// runs. Nesting is tracked with counters so <b><i>..</i></b> composes.
func tokenizeFragment(fragment *bytes.Buffer) []Span {
	z := xhtml.NewTokenizer(fragment)

	var spans []Span
	bold, italic := 0, 0
	paragraphs := 0

	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return trimBreaks(spans)

		case xhtml.TextToken:
			// Newlines inside the fragment are serialization artifacts:
			// real line breaks arrive as <br/> tokens.
			text := strings.ReplaceAll(string(z.Text()), "\n", "")
			if text == "" {
				continue
			}
			spans = append(spans, Span{
				Text:   text,
				Bold:   bold > 0,
				Italic: italic > 0,
			})

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "strong", "b":
				bold++
			case "em", "i":
				italic++
			case "br":
				spans = append(spans, Span{Break: true})
			case "p":
				// Blank line between source paragraphs.
				if paragraphs > 0 {
					spans = append(spans, Span{Break: true}, Span{Break: true})
				}
				paragraphs++
			}

		case xhtml.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "strong", "b":
				if bold > 0 {
					bold--
				}
			case "em", "i":
				if italic > 0 {
					italic--
				}
			}
		}
	}
}

// trimBreaks drops leading and trailing break spans.
func trimBreaks(spans []Span) []Span {
	start := 0
	for start < len(spans) && spans[start].Break {
		start++
	}
	end := len(spans)
	for end > start && spans[end-1].Break {
		end--
	}
	return spans[start:end]
}

// flattenSpans joins span text with newlines at breaks, for contexts that
// cannot carry styled runs (e.g. table cells).
func flattenSpans(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Break {
			b.WriteString("\n")
			continue
		}
		b.WriteString(sp.Text)
	}
	return b.String()
}

// allBold reports whether every text span is bold. Used to map fully bold
// cells (e.g. field labels) onto a bold cell font.
func allBold(spans []Span) bool {
	seen := false
	for _, sp := range spans {
		if sp.Break {
			continue
		}
		if !sp.Bold {
			return false
		}
		seen = true
	}
	return seen
}

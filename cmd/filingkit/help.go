package main

import (
	"fmt"
	"io"

	"github.com/filingkit/filingkit/internal/content"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: filingkit [flags] <document> [output.pdf]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a court filing document to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documents:")
	for _, name := range content.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  document     Name of the document to render")
	fmt.Fprintln(w, "  output.pdf   Output path (optional, defaults per document)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Output file path")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -l, --list            List available documents")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show detailed progress")
	fmt.Fprintln(w, "      --version         Show version information")
}

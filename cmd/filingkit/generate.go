package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	filingkit "github.com/filingkit/filingkit"
	"github.com/filingkit/filingkit/internal/config"
	"github.com/filingkit/filingkit/internal/content"
)

// Sentinel errors for CLI operations.
var (
	ErrNoDocument   = errors.New("no document specified")
	ErrTooManyArgs  = errors.New("too many arguments")
	ErrBadExtension = errors.New("output path must end in .pdf")
)

// DocumentRenderer is the interface for the rendering service.
type DocumentRenderer interface {
	RenderFile(ctx context.Context, doc *filingkit.Document, path string) error
}

// Compile-time interface implementation check.
var _ DocumentRenderer = (*filingkit.Service)(nil)

// run executes one invocation. args must include the program name at
// index 0; svc performs the actual rendering.
func run(ctx context.Context, args []string, svc DocumentRenderer, deps *Dependencies) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(deps.Stdout, "filingkit %s\n", Version)
		return nil
	}

	if flags.list {
		for _, name := range content.Names() {
			fmt.Fprintln(deps.Stdout, name)
		}
		return nil
	}

	if len(positional) == 0 {
		printUsage(deps.Stderr)
		return ErrNoDocument
	}
	if len(positional) > 2 {
		return fmt.Errorf("%w: expected <document> [output.pdf], got %d arguments", ErrTooManyArgs, len(positional))
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	filing, err := content.Load(positional[0])
	if err != nil {
		return err
	}
	applyPageConfig(filing.Document, cfg)

	outPath, err := resolveOutputPath(flags, positional, filing, cfg)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(deps.Stderr, "Rendering %s (%d blocks) to %s\n",
			filing.Name, len(filing.Document.Blocks()), outPath)
	}

	if err := svc.RenderFile(ctx, filing.Document, outPath); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(deps.Stdout, "Created %s\n", outPath)
	}
	return nil
}

// applyPageConfig overlays config page settings onto the document.
// Empty or zero config fields leave the document's own settings intact.
func applyPageConfig(doc *filingkit.Document, cfg *config.Config) {
	if cfg.Page.Size != "" {
		doc.Geometry.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.MarginIn > 0 {
		m := cfg.Page.MarginIn * filingkit.Inch
		doc.Geometry.Top = m
		doc.Geometry.Bottom = m
		doc.Geometry.Left = m
		doc.Geometry.Right = m
	}
}

// resolveOutputPath picks the output path: the positional path wins over
// the -o flag, which wins over the document's default name placed in the
// configured output directory.
func resolveOutputPath(flags *cliFlags, positional []string, filing *content.Filing, cfg *config.Config) (string, error) {
	path := ""
	switch {
	case len(positional) == 2:
		path = positional[1]
	case flags.output != "":
		path = flags.output
	default:
		path = filepath.Join(cfg.Output.Dir, filing.DefaultOutput)
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", fmt.Errorf("%w: %s", ErrBadExtension, path)
	}
	return path, nil
}

package filingkit

import (
	"context"
	"fmt"

	"github.com/filingkit/filingkit/internal/fileutil"
)

// Service orchestrates rendering a document and writing the artifact.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with the default PDF renderer.
// Use options to customize behavior (e.g., WithRenderer).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.renderer == nil {
		s.cfg.renderer = NewPDFRenderer()
	}
	return s
}

// Render produces the output artifact bytes for doc.
// The context is checked before the render call; the render itself is a
// single synchronous pure function of the document.
func (s *Service) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := s.cfg.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return out, nil
}

// RenderFile renders doc and writes the artifact to path, overwriting any
// existing file. On failure no partial artifact is left behind.
func (s *Service) RenderFile(ctx context.Context, doc *Document, path string) error {
	out, err := s.Render(ctx, doc)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, out); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

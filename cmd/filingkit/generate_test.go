package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	filingkit "github.com/filingkit/filingkit"
	"github.com/filingkit/filingkit/internal/content"
)

// stubRenderer records the render call without producing a real PDF.
type stubRenderer struct {
	called bool
	doc    *filingkit.Document
	path   string
	err    error
}

func (s *stubRenderer) RenderFile(ctx context.Context, doc *filingkit.Document, path string) error {
	s.called = true
	s.doc = doc
	s.path = path
	return s.err
}

func testDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Dependencies{
		Now:    func() time.Time { return time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func TestRunList(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	stub := &stubRenderer{}

	if err := run(context.Background(), []string{"filingkit", "--list"}, stub, deps); err != nil {
		t.Fatalf("run(--list) error = %v", err)
	}
	if stub.called {
		t.Error("listing should not render")
	}

	got := strings.Fields(stdout.String())
	want := content.Names()
	if len(got) != len(want) {
		t.Fatalf("listed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("listed[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	if err := run(context.Background(), []string{"filingkit", "--version"}, &stubRenderer{}, deps); err != nil {
		t.Fatalf("run(--version) error = %v", err)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("stdout = %q, want version string", stdout.String())
	}
}

func TestRunArgumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no document", []string{"filingkit"}, ErrNoDocument},
		{"too many args", []string{"filingkit", "complaint", "a.pdf", "extra"}, ErrTooManyArgs},
		{"unknown document", []string{"filingkit", "motion-to-dismiss"}, content.ErrUnknownDocument},
		{"bad extension", []string{"filingkit", "complaint", "out.txt"}, ErrBadExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps, _, _ := testDeps()
			err := run(context.Background(), tt.args, &stubRenderer{}, deps)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestRunNoDocumentPrintsUsage(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps()
	_ = run(context.Background(), []string{"filingkit"}, &stubRenderer{}, deps)
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Error("missing usage message on stderr")
	}
}

func TestRunOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantPath string
	}{
		{
			name:     "positional path",
			args:     []string{"filingkit", "fee-waiver", "waiver.pdf"},
			wantPath: "waiver.pdf",
		},
		{
			name:     "output flag",
			args:     []string{"filingkit", "-o", "flagged.pdf", "fee-waiver"},
			wantPath: "flagged.pdf",
		},
		{
			name:     "positional wins over flag",
			args:     []string{"filingkit", "-o", "flagged.pdf", "fee-waiver", "positional.pdf"},
			wantPath: "positional.pdf",
		},
		{
			name:     "default per document",
			args:     []string{"filingkit", "fee-waiver"},
			wantPath: "Fee_Waiver_Request_Bo_Shang.pdf",
		},
		{
			name:     "uppercase extension",
			args:     []string{"filingkit", "fee-waiver", "WAIVER.PDF"},
			wantPath: "WAIVER.PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps, stdout, _ := testDeps()
			stub := &stubRenderer{}

			if err := run(context.Background(), tt.args, stub, deps); err != nil {
				t.Fatalf("run(%v) error = %v", tt.args, err)
			}
			if stub.path != tt.wantPath {
				t.Errorf("rendered to %q, want %q", stub.path, tt.wantPath)
			}
			if want := "Created " + tt.wantPath + "\n"; stdout.String() != want {
				t.Errorf("stdout = %q, want %q", stdout.String(), want)
			}
		})
	}
}

func TestRunQuiet(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	if err := run(context.Background(), []string{"filingkit", "-q", "fee-waiver"}, &stubRenderer{}, deps); err != nil {
		t.Fatalf("run(-q) error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty in quiet mode", stdout.String())
	}
}

func TestRunRendererError(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	wantErr := errors.New("disk full")

	err := run(context.Background(), []string{"filingkit", "complaint"}, &stubRenderer{err: wantErr}, deps)
	if !errors.Is(err, wantErr) {
		t.Errorf("run() error = %v, want %v", err, wantErr)
	}
	if strings.Contains(stdout.String(), "Created") {
		t.Error("success message printed despite failure")
	}
}

func TestRunConfigOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgYAML := "output:\n  dir: " + dir + "\npage:\n  size: a4\n  marginIn: 1.5\n"
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	deps, _, _ := testDeps()
	stub := &stubRenderer{}

	if err := run(context.Background(), []string{"filingkit", "-c", cfgPath, "complaint"}, stub, deps); err != nil {
		t.Fatalf("run(-c) error = %v", err)
	}

	if want := filepath.Join(dir, "CivilActionComplaint.pdf"); stub.path != want {
		t.Errorf("rendered to %q, want %q", stub.path, want)
	}

	geo := stub.doc.Geometry
	if geo.Size != filingkit.PageSizeA4 {
		t.Errorf("Size = %q, want a4 from config", geo.Size)
	}
	if want := 1.5 * filingkit.Inch; geo.Top != want || geo.Left != want {
		t.Errorf("margins = %v/%v, want %v from config", geo.Top, geo.Left, want)
	}
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	path := filepath.Join(t.TempDir(), "waiver.pdf")

	err := run(context.Background(), []string{"filingkit", "fee-waiver", path}, filingkit.New(), deps)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- test-controlled path
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("artifact is not a PDF")
	}
	if !strings.Contains(stdout.String(), path) {
		t.Errorf("stdout = %q, want path %q", stdout.String(), path)
	}
}

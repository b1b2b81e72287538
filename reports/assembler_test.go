package reports

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

func TestAssemblerWritesFormats(t *testing.T) {
	root := t.TempDir()
	a, err := NewAssembler(root, []string{"csv", "JSON", "md", "html", "csv"}, 2, nil, quietLogger())
	if err != nil {
		t.Fatalf("NewAssembler: %v", err)
	}
	s := sampleSession(t)

	paths, err := a.Write(context.Background(), s)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(paths) != 4+12+2 {
		t.Errorf("paths: got %d, want 18", len(paths))
	}
	if !sort.StringsAreSorted(paths) {
		t.Error("paths should be sorted")
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, filepath.Join(root, s.ID)) {
			t.Errorf("%s not under the session directory", p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %s: %v", p, err)
		}
	}
}

func TestAssemblerRejectsUnknownFormat(t *testing.T) {
	if _, err := NewAssembler(t.TempDir(), []string{"docx"}, 1, nil, quietLogger()); err == nil {
		t.Error("want error for unknown format")
	}
	if _, err := NewAssembler(t.TempDir(), []string{"pdf"}, 1, nil, quietLogger()); err == nil {
		t.Error("want error for pdf without renderer")
	}
}

func TestAssemblerReportsFailedFormat(t *testing.T) {
	root := t.TempDir()
	noBrowser := &PDFRenderer{timeout: time.Second, logger: quietLogger()}
	a, err := NewAssembler(root, []string{"markdown", "pdf"}, 2, noBrowser, quietLogger())
	if err != nil {
		t.Fatalf("NewAssembler: %v", err)
	}

	paths, err := a.Write(context.Background(), sampleSession(t))
	if err == nil {
		t.Fatal("want error from pdf format")
	}
	if len(paths) != 1 || !strings.HasSuffix(paths[0], "analysis_report.md") {
		t.Errorf("successful formats should still be listed, got %v", paths)
	}
}

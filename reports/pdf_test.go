package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"hcm-analyzer/utils"
)

func TestPDFRendererWithoutBrowser(t *testing.T) {
	p := &PDFRenderer{logger: quietLogger(), retry: &utils.RetryConfig{MaxAttempts: 1}}
	if p.Available() {
		t.Fatal("renderer without a binary should not be available")
	}
	if _, err := p.Render(context.Background(), []byte("<p>x</p>")); !errors.Is(err, ErrNoBrowser) {
		t.Errorf("want ErrNoBrowser, got %v", err)
	}
}

func TestPDFRendererPrints(t *testing.T) {
	p := NewPDFRenderer("", 30*time.Second, nil, quietLogger())
	if !p.Available() {
		t.Skip("no chrome binary available")
	}
	out, err := p.Render(context.Background(), []byte("<html><body><h1>HCM</h1></body></html>"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output is not a PDF: %q", out[:min(len(out), 8)])
	}
}

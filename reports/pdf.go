package reports

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"hcm-analyzer/utils"
)

// ErrNoBrowser is returned when no Chrome or Chromium binary can be found.
var ErrNoBrowser = errors.New("no chrome binary found")

// PDFRenderer prints HTML to PDF through headless Chrome.
type PDFRenderer struct {
	chromeBin string
	timeout   time.Duration
	retry     *utils.RetryConfig
	logger    *utils.Logger
}

// NewPDFRenderer uses chromeBin when set, otherwise the first browser found
// on the system.
func NewPDFRenderer(chromeBin string, timeout time.Duration, retry *utils.RetryConfig, logger *utils.Logger) *PDFRenderer {
	if chromeBin == "" {
		chromeBin = FindChromeBinary()
	}
	if retry == nil {
		retry = &utils.RetryConfig{MaxAttempts: 1}
	}
	return &PDFRenderer{chromeBin: chromeBin, timeout: timeout, retry: retry, logger: logger}
}

// Available reports whether a browser binary was found.
func (p *PDFRenderer) Available() bool {
	return p.chromeBin != ""
}

// Render prints html as an A4 PDF with backgrounds. Each attempt runs in
// a fresh browser bounded by the renderer's timeout.
func (p *PDFRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	if !p.Available() {
		return nil, fmt.Errorf("pdf: %w", ErrNoBrowser)
	}

	var pdf []byte
	err := p.retry.Do(ctx, "pdf render", func(ctx context.Context) error {
		out, err := p.print(ctx, html)
		if err != nil {
			return err
		}
		pdf = out
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	p.logger.Debug("[pdf] Rendered %d bytes", len(pdf))
	return pdf, nil
}

func (p *PDFRenderer) print(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.ExecPath(p.chromeBin),
	)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("print: %w", err)
			}
			pdf = buf
			return nil
		}),
	)
	return pdf, err
}

// FindChromeBinary looks at CHROME_BIN, then PATH, then the usual install
// locations. It returns "" when nothing is found.
func FindChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hcm-analyzer/models"
	"hcm-analyzer/storage"
	"hcm-analyzer/utils"
)

// Output formats the assembler understands.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

const reportBaseName = "analysis_report"

// Assembler writes every configured report format for a session into its
// own directory under the output root.
type Assembler struct {
	outputDir   string
	formats     []string
	concurrency int
	markdown    *MarkdownRenderer
	html        *HTMLRenderer
	pdf         *PDFRenderer
	logger      *utils.Logger
}

// NewAssembler validates formats up front. pdf may be nil when the PDF
// format is not requested.
func NewAssembler(outputDir string, formats []string, concurrency int, pdf *PDFRenderer, logger *utils.Logger) (*Assembler, error) {
	seen := make(map[string]bool)
	var clean []string
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case FormatCSV, FormatJSON, FormatMarkdown, FormatHTML, FormatPDF:
		case "md":
			f = FormatMarkdown
		default:
			return nil, fmt.Errorf("reports: unknown output format %q", f)
		}
		if f == FormatPDF && pdf == nil {
			return nil, fmt.Errorf("reports: pdf format requested without a renderer")
		}
		if !seen[f] {
			seen[f] = true
			clean = append(clean, f)
		}
	}

	md, err := NewMarkdownRenderer()
	if err != nil {
		return nil, err
	}
	html, err := NewHTMLRenderer(md)
	if err != nil {
		return nil, err
	}

	return &Assembler{
		outputDir:   outputDir,
		formats:     clean,
		concurrency: max(1, concurrency),
		markdown:    md,
		html:        html,
		pdf:         pdf,
		logger:      logger,
	}, nil
}

// HTML exposes the HTML renderer for serving the report over HTTP.
func (a *Assembler) HTML() *HTMLRenderer { return a.html }

// Write renders the formats concurrently and returns the sorted paths of
// every file written. Formats that fail are reported together; files from
// the formats that succeeded are still listed.
func (a *Assembler) Write(ctx context.Context, s *models.Session) ([]string, error) {
	dir := filepath.Join(a.outputDir, s.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("reports: create %q: %w", dir, err)
	}

	written := utils.NewPathSet()
	pool := utils.NewWorkerPool(a.concurrency)

	for _, format := range a.formats {
		format := format // per-iteration copy for the closure (go 1.21 loop semantics)
		pool.Submit(func() error {
			paths, err := a.writeFormat(ctx, dir, format, s)
			for _, p := range paths {
				written.Add(p)
			}
			if err != nil {
				a.logger.Error("[reports] %s failed: %v", format, err)
				return fmt.Errorf("reports: %s: %w", format, err)
			}
			a.logger.Debug("[reports] %s done (%d files)", format, len(paths))
			return nil
		})
	}

	err := pool.Wait()
	paths := written.Sorted()
	a.logger.Info("[reports] Wrote %d files to %s", len(paths), dir)
	return paths, err
}

func (a *Assembler) writeFormat(ctx context.Context, dir, format string, s *models.Session) ([]string, error) {
	switch format {
	case FormatCSV:
		return storage.NewCSVWriter(filepath.Join(dir, "csv"), a.logger).WriteSession(s)
	case FormatJSON:
		return storage.NewJSONWriter(filepath.Join(dir, "json"), a.logger).WriteSession(s)
	case FormatMarkdown:
		data, err := a.markdown.Bytes(s)
		if err != nil {
			return nil, err
		}
		return writeFile(filepath.Join(dir, reportBaseName+".md"), data)
	case FormatHTML:
		data, err := a.html.Bytes(s)
		if err != nil {
			return nil, err
		}
		return writeFile(filepath.Join(dir, reportBaseName+".html"), data)
	case FormatPDF:
		html, err := a.html.Bytes(s)
		if err != nil {
			return nil, err
		}
		data, err := a.pdf.Render(ctx, html)
		if err != nil {
			return nil, err
		}
		return writeFile(filepath.Join(dir, reportBaseName+".pdf"), data)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func writeFile(path string, data []byte) ([]string, error) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write %q: %w", path, err)
	}
	return []string{path}, nil
}

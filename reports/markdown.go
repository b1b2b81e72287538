package reports

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"

	"hcm-analyzer/models"
)

//go:embed templates/*
var templatesFS embed.FS

// reportData is the template context: the session plus what the templates
// cannot compute themselves.
type reportData struct {
	*models.Session
	Title string
	Tiers []models.Tier
}

func newReportData(s *models.Session) reportData {
	title := s.Metadata["title"]
	if title == "" {
		title = s.Config.SystemName + " Analysis Report"
	}
	return reportData{Session: s, Title: title, Tiers: models.Tiers}
}

var funcMap = template.FuncMap{
	"f2":    func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"pct":   func(f float64) string { return fmt.Sprintf("%.1f%%", f*100) },
	"money": func(f float64) string { return "$" + humanize.Commaf(f) },
	"inc":   func(i int) int { return i + 1 },
	"join":  strings.Join,
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}

// MarkdownRenderer renders the analysis report as Markdown.
type MarkdownRenderer struct {
	tmpl *template.Template
}

func NewMarkdownRenderer() (*MarkdownRenderer, error) {
	tmpl, err := template.New("report.md.tmpl").Funcs(funcMap).ParseFS(templatesFS, "templates/report.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("markdown: parse template: %w", err)
	}
	return &MarkdownRenderer{tmpl: tmpl}, nil
}

func (m *MarkdownRenderer) Render(w io.Writer, s *models.Session) error {
	if err := m.tmpl.Execute(w, newReportData(s)); err != nil {
		return fmt.Errorf("markdown: render: %w", err)
	}
	return nil
}

// Bytes renders the report into memory.
func (m *MarkdownRenderer) Bytes(s *models.Session) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Render(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

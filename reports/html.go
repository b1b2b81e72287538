package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/russross/blackfriday/v2"

	"hcm-analyzer/models"
)

// HTMLRenderer converts the Markdown report to HTML and wraps it in a
// standalone page.
type HTMLRenderer struct {
	markdown *MarkdownRenderer
	layout   *template.Template
}

type layoutData struct {
	Title     string
	SessionID string
	Engine    string
	Generated string
	Body      template.HTML
}

func NewHTMLRenderer(md *MarkdownRenderer) (*HTMLRenderer, error) {
	layout, err := template.ParseFS(templatesFS, "templates/layout.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("html: parse layout: %w", err)
	}
	return &HTMLRenderer{markdown: md, layout: layout}, nil
}

func (h *HTMLRenderer) Render(w io.Writer, s *models.Session) error {
	md, err := h.markdown.Bytes(s)
	if err != nil {
		return err
	}
	body := blackfriday.Run(md,
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.AutoHeadingIDs),
		blackfriday.WithRenderer(markdownHTML()),
	)

	data := layoutData{
		Title:     newReportData(s).Title,
		SessionID: s.ID,
		Engine:    s.Metadata["analysis_engine"],
		Generated: s.Timestamp.Format(time.RFC1123),
		Body:      template.HTML(body),
	}
	if err := h.layout.Execute(w, data); err != nil {
		return fmt.Errorf("html: render: %w", err)
	}
	return nil
}

// markdownHTML drops raw HTML from the Markdown source. Titles and page
// names can come from API callers and catalog files.
func markdownHTML() *blackfriday.HTMLRenderer {
	return blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML | blackfriday.Safelink,
	})
}

func (h *HTMLRenderer) Bytes(s *models.Session) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.Render(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hcm-analyzer/models"
	"hcm-analyzer/utils"
)

// CSVWriter writes the flat record reports: pages, features, best practices
// and per-page performance grades.
type CSVWriter struct {
	dir    string
	logger *utils.Logger
}

// NewCSVWriter writes into dir, creating it when needed.
func NewCSVWriter(dir string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{dir: dir, logger: logger}
}

// WriteSession writes the four CSV files and returns their paths.
func (c *CSVWriter) WriteSession(s *models.Session) ([]string, error) {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"pages_analysis.csv", pageHeader, pageRows(s.Pages)},
		{"features_analysis.csv", featureHeader, featureRows(s.Features)},
		{"best_practices.csv", practiceHeader, practiceRows(s.BestPractices)},
		{"performance_metrics.csv", performanceHeader, performanceRows(s.Pages)},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(c.dir, f.name)
		if err := writeCSV(path, f.header, f.rows); err != nil {
			return paths, err
		}
		c.logger.Debug("[csv] Wrote %d rows to %s", len(f.rows), path)
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("csv: write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("csv: write rows: %w", err)
	}
	return f.Close()
}

var pageHeader = []string{
	"Title", "Module", "URL", "Complexity Score", "Load Time (s)",
	"Feature Count", "Business Criticality", "Usage Frequency",
	"Technical Debt", "Accessibility Score", "Mobile Friendly",
	"SEO Score", "Forms Count", "Reports Count", "Workflows Count",
}

func pageRows(pages []models.Page) [][]string {
	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		rows = append(rows, []string{
			p.Title,
			p.Module,
			p.URL,
			ftoa(p.ComplexityScore),
			ftoa(p.LoadTime),
			strconv.Itoa(p.FeatureCount),
			string(p.BusinessCriticality),
			p.UsageFrequency,
			ftoa(p.TechnicalDebt),
			ftoa(p.AccessibilityScore),
			strconv.FormatBool(p.MobileFriendly),
			ftoa(p.SEOScore),
			strconv.Itoa(len(p.Forms)),
			strconv.Itoa(len(p.Reports)),
			strconv.Itoa(len(p.Workflows)),
		})
	}
	return rows
}

var featureHeader = []string{
	"Name", "Category", "Complexity", "Business Value",
	"Implementation Effort", "Risk Level", "ROI Timeline",
	"Dependencies Count", "API Endpoints Count", "Configuration Options Count",
}

func featureRows(features []models.Feature) [][]string {
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{
			f.Name,
			f.Category,
			string(f.Complexity),
			string(f.BusinessValue),
			string(f.ImplementationEffort),
			string(f.RiskLevel),
			f.ROITimeline,
			strconv.Itoa(len(f.Dependencies)),
			strconv.Itoa(len(f.APIEndpoints)),
			strconv.Itoa(len(f.ConfigurationOptions)),
		})
	}
	return rows
}

var practiceHeader = []string{
	"Title", "Category", "Priority", "Business Impact",
	"Estimated Effort", "Timeline", "Cost Estimate",
	"Implementation Steps Count", "Prerequisites Count",
	"Required Resources Count", "Benefits Count",
}

func practiceRows(practices []models.BestPractice) [][]string {
	rows := make([][]string, 0, len(practices))
	for _, bp := range practices {
		rows = append(rows, []string{
			bp.Title,
			bp.Category,
			strconv.Itoa(bp.Priority),
			string(bp.BusinessImpact),
			string(bp.EstimatedEffort),
			bp.Timeline,
			bp.Cost.String(),
			strconv.Itoa(len(bp.ImplementationSteps)),
			strconv.Itoa(len(bp.Prerequisites)),
			strconv.Itoa(len(bp.RequiredResources)),
			strconv.Itoa(len(bp.Benefits)),
		})
	}
	return rows
}

var performanceHeader = []string{
	"Page Title", "Load Time (s)", "Complexity Score",
	"Technical Debt", "Performance Grade", "Recommendations",
}

func performanceRows(pages []models.Page) [][]string {
	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		rows = append(rows, []string{
			p.Title,
			ftoa(p.LoadTime),
			ftoa(p.ComplexityScore),
			ftoa(p.TechnicalDebt),
			performanceGrade(p),
			performanceActions(p),
		})
	}
	return rows
}

// performanceGrade is A to D on load time and complexity together.
func performanceGrade(p models.Page) string {
	switch {
	case p.LoadTime <= 2.0 && p.ComplexityScore <= 0.5:
		return "A"
	case p.LoadTime <= 3.0 && p.ComplexityScore <= 0.7:
		return "B"
	case p.LoadTime <= 4.0 && p.ComplexityScore <= 0.8:
		return "C"
	default:
		return "D"
	}
}

func performanceActions(p models.Page) string {
	var actions []string
	if p.LoadTime > 3.0 {
		actions = append(actions, "Optimize load time")
	}
	if p.ComplexityScore > 0.7 {
		actions = append(actions, "Reduce complexity")
	}
	if p.TechnicalDebt > 0.5 {
		actions = append(actions, "Address technical debt")
	}
	if len(actions) == 0 {
		return "No immediate action needed"
	}
	return strings.Join(actions, "; ")
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

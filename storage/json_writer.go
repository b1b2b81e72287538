package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hcm-analyzer/models"
	"hcm-analyzer/services"
	"hcm-analyzer/utils"
)

// JSONWriter exports the session and each derived report as indented JSON.
type JSONWriter struct {
	dir    string
	logger *utils.Logger
}

func NewJSONWriter(dir string, logger *utils.Logger) *JSONWriter {
	return &JSONWriter{dir: dir, logger: logger}
}

// WriteSession writes one file per report. Reports the session was built
// without are skipped.
func (j *JSONWriter) WriteSession(s *models.Session) ([]string, error) {
	if err := os.MkdirAll(j.dir, 0755); err != nil {
		return nil, fmt.Errorf("json: create output dir: %w", err)
	}

	docs := []struct {
		name string
		v    any
		skip bool
	}{
		{"detailed_session_data.json", s, false},
		{"module_analysis.json", s.Modules, false},
		{"risk_assessment.json", s.Risk, s.Risk == nil},
		{"roi_analysis.json", s.ROI, false},
		{"executive_dashboard.json", services.ExecutiveDashboard(s), false},
		{"kpi_summary.json", s.KPI, s.KPI == nil},
		{"compliance_summary.json", s.Compliance, false},
		{"industry_benchmarks.json", s.Benchmarks, s.Benchmarks == nil},
		{"best_in_class_comparison.json", s.BestInClass, s.BestInClass == nil},
		{"implementation_roadmap.json", s.Roadmap, false},
		{"action_items.json", s.ActionItems, false},
		{"resource_requirements.json", s.Resources, false},
	}

	var paths []string
	for _, d := range docs {
		if d.skip {
			continue
		}
		path := filepath.Join(j.dir, d.name)
		if err := writeJSON(path, d.v); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	j.logger.Debug("[json] Wrote %d reports to %s", len(paths), j.dir)
	return paths, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json: encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("json: write %q: %w", path, err)
	}
	return nil
}

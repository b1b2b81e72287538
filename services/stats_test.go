package services

import (
	"testing"

	"hcm-analyzer/models"
)

func TestCalculateEmptyInput(t *testing.T) {
	s := NewStatsService(quietLogger()).Calculate(nil, nil, nil)
	if s != (models.SystemStats{}) {
		t.Errorf("empty input should give zero stats, got %+v", s)
	}
}

func TestCalculateEmptyPagesOnly(t *testing.T) {
	features := []models.Feature{{BusinessValue: models.LevelHigh, RiskLevel: models.LevelHigh}}
	s := NewStatsService(quietLogger()).Calculate(nil, features, nil)

	if s.AverageComplexity != 0 || s.AverageLoadTime != 0 || s.FeatureDensity != 0 {
		t.Errorf("page-derived fields should be 0, got %+v", s)
	}
	if s.TotalFeatures != 1 || s.SecurityConcerns != 1 {
		t.Errorf("feature-derived fields: got total=%d security=%d", s.TotalFeatures, s.SecurityConcerns)
	}
	if s.BusinessValueScore != 1.0 {
		t.Errorf("BusinessValueScore: got %v, want 1", s.BusinessValueScore)
	}
}

func TestCalculatePageFields(t *testing.T) {
	pages := []models.Page{
		{ComplexityScore: 0.9, LoadTime: 4.0, AccessibilityScore: 0.6, MobileFriendly: false, SEOScore: 0.9, TechnicalDebt: 0.72, Workflows: []string{"w"}},
		{ComplexityScore: 0.2, LoadTime: 1.0, AccessibilityScore: 0.9, MobileFriendly: true, SEOScore: 0.5, TechnicalDebt: 0.16},
		{ComplexityScore: 0.5, LoadTime: 2.5, AccessibilityScore: 0.75, MobileFriendly: true, SEOScore: 0.85, TechnicalDebt: 0.4, Workflows: []string{"w"}},
	}
	features := make([]models.Feature, 6)
	s := NewStatsService(quietLogger()).Calculate(pages, features, nil)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"AverageComplexity", s.AverageComplexity, 0.53},
		{"AverageLoadTime", s.AverageLoadTime, 2.5},
		{"TechnicalDebtTotal", s.TechnicalDebtTotal, 1.28},
		{"WorkflowIntegrationScore", s.WorkflowIntegrationScore, 0.67},
		{"FeatureDensity", s.FeatureDensity, 2},
		{"HighComplexityPages", float64(s.HighComplexityPages), 1},
		{"PerformanceIssues", float64(s.PerformanceIssues), 1},
		{"AccessibilityIssues", float64(s.AccessibilityIssues), 1},
		{"MobileFriendlyPages", float64(s.MobileFriendlyPages), 2},
		{"SEOOptimizedPages", float64(s.SEOOptimizedPages), 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestCalculateBusinessValueScore(t *testing.T) {
	features := []models.Feature{
		{BusinessValue: models.LevelHigh},
		{BusinessValue: models.LevelLow},
	}
	s := NewStatsService(quietLogger()).Calculate(nil, features, nil)
	if s.BusinessValueScore != 0.67 {
		t.Errorf("BusinessValueScore: got %v, want 0.67", s.BusinessValueScore)
	}
}

func TestCalculateROIScore(t *testing.T) {
	tests := []struct {
		name      string
		practices []models.BestPractice
		want      float64
	}{
		{"empty", nil, 0},
		{"single top", []models.BestPractice{{Priority: 5, BusinessImpact: models.LevelHigh}}, 1.0},
		{"mixed", []models.BestPractice{
			{Priority: 5, BusinessImpact: models.LevelHigh},
			{Priority: 3, BusinessImpact: models.LevelMedium},
			{Priority: 4, BusinessImpact: models.LevelMedium},
			{Priority: 3, BusinessImpact: models.LevelMedium},
		}, 0.58},
	}
	for _, tt := range tests {
		s := NewStatsService(quietLogger()).Calculate(nil, nil, tt.practices)
		if s.ROIScore != tt.want {
			t.Errorf("%s: ROIScore got %v, want %v", tt.name, s.ROIScore, tt.want)
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	g := newTestGenerator()
	pages := []models.Page{g.GeneratePage("Calibration", "Performance", 16)}
	svc := NewStatsService(quietLogger())
	a := svc.Calculate(pages, nil, nil)
	b := svc.Calculate(pages, nil, nil)
	if a != b {
		t.Errorf("Calculate not idempotent: %+v vs %+v", a, b)
	}
}

func TestModuleBreakdown(t *testing.T) {
	pages := []models.Page{
		{Title: "A", Module: "Core HR", ComplexityScore: 0.2, LoadTime: 1.0, BusinessCriticality: models.LevelHigh},
		{Title: "B", Module: "Learning", ComplexityScore: 0.4, LoadTime: 2.0},
		{Title: "C", Module: "Core HR", ComplexityScore: 0.4, LoadTime: 2.0},
	}
	features := []models.Feature{{Page: "A"}, {Page: "C"}, {Page: "B"}, {Name: "common"}}

	got := NewStatsService(quietLogger()).ModuleBreakdown(pages, features)
	if len(got) != 2 {
		t.Fatalf("modules: got %d, want 2", len(got))
	}
	core := got[0]
	if core.Module != "Core HR" || core.TotalPages != 2 || core.TotalFeatures != 2 {
		t.Errorf("Core HR: got %+v", core)
	}
	if core.AverageComplexity != 0.3 || core.AverageLoadTime != 1.5 || core.HighCriticalityPages != 1 {
		t.Errorf("Core HR averages: got %+v", core)
	}
	// load (3.5/5 = 0.7) and simplicity (0.7) average to 0.7
	if core.PerformanceScore != 0.7 {
		t.Errorf("Core HR PerformanceScore: got %v, want 0.7", core.PerformanceScore)
	}
	if got[1].Module != "Learning" || got[1].TotalFeatures != 1 {
		t.Errorf("Learning: got %+v", got[1])
	}
}

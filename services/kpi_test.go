package services

import (
	"testing"

	"hcm-analyzer/models"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		complexity float64
		want       string
	}{
		{0.1, "Top 10%"},
		{0.3, "Top 10%"},
		{0.45, "Top 25%"},
		{0.7, "Top 50%"},
		{0.85, "Top 75%"},
		{0.95, "Bottom 25%"},
	}
	for _, tt := range tests {
		if got := Percentile(tt.complexity); got != tt.want {
			t.Errorf("Percentile(%v): got %q, want %q", tt.complexity, got, tt.want)
		}
	}
}

func TestImprovementPotential(t *testing.T) {
	tests := []struct {
		name          string
		current       float64
		target        float64
		lowerIsBetter bool
		want          string
	}{
		{"load time far behind", 3.0, 1.2, true, "High"},
		{"complexity close", 0.34, 0.3, true, "Low"},
		{"accessibility behind", 0.7, 0.95, false, "Medium"},
		{"mobile at target", 0.98, 0.98, false, "Low"},
		{"zero current", 0, 0.98, false, "High"},
	}
	for _, tt := range tests {
		if got := improvementPotential(tt.current, tt.target, tt.lowerIsBetter); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestKPISummary(t *testing.T) {
	pages := []models.Page{
		{LoadTime: 1.0, ComplexityScore: 0.2, MobileFriendly: true, AccessibilityScore: 0.9, TechnicalDebt: 0.16},
		{LoadTime: 6.0, ComplexityScore: 0.5, AccessibilityScore: 0.5, TechnicalDebt: 0.4},
		{LoadTime: 2.0, ComplexityScore: 0.9, MobileFriendly: true, AccessibilityScore: 0.8, TechnicalDebt: 0.72},
	}
	practices := []models.BestPractice{
		{Priority: 5, BusinessImpact: models.LevelHigh},
		{Priority: 4, BusinessImpact: models.LevelMedium},
		{Priority: 3, BusinessImpact: models.LevelHigh},
	}
	k := KPISummary(pages, practices)

	if k.Performance.AveragePageLoadTime != 3.0 {
		t.Errorf("AveragePageLoadTime: got %v, want 3", k.Performance.AveragePageLoadTime)
	}
	if k.Performance.PagesUnder3s != 2 || k.Performance.PagesOver5s != 1 {
		t.Errorf("load buckets: got %+v", k.Performance)
	}
	want := models.ComplexityDistribution{Low: 1, Medium: 1, High: 1}
	if k.Performance.ComplexityDistribution != want {
		t.Errorf("ComplexityDistribution: got %+v, want %+v", k.Performance.ComplexityDistribution, want)
	}
	if k.Quality.MobileFriendlyPages != 2 || k.Quality.HighAccessibilityPages != 2 || k.Quality.LowTechnicalDebtPages != 1 {
		t.Errorf("quality: got %+v", k.Quality)
	}
	if k.Business.HighPriorityRecommendations != 2 || k.Business.ImmediateActions != 1 || k.Business.HighBusinessImpact != 2 {
		t.Errorf("business: got %+v", k.Business)
	}
}

func TestBenchmarks(t *testing.T) {
	pages := []models.Page{
		{LoadTime: 1.0, ComplexityScore: 0.4, MobileFriendly: true, AccessibilityScore: 0.9},
		{LoadTime: 2.0, ComplexityScore: 0.6, MobileFriendly: false, AccessibilityScore: 0.7},
	}
	stats := NewStatsService(quietLogger()).Calculate(pages, nil, nil)
	b := DefaultBenchmarks()

	ib := b.IndustryBenchmarks(pages, stats)
	if ib.Performance.YourAverageComplexity != 0.5 || ib.Performance.PerformancePercentile != "Top 25%" {
		t.Errorf("performance benchmark: got %+v", ib.Performance)
	}
	if ib.Quality.YourMobileAdoption != 0.5 || ib.Quality.IndustryMobileAdoption != 0.85 {
		t.Errorf("quality benchmark: got %+v", ib.Quality)
	}

	bic := b.BestInClass(pages, stats)
	if bic.Yours.AccessibilityScore != 0.8 {
		t.Errorf("your accessibility: got %v, want 0.8", bic.Yours.AccessibilityScore)
	}
	if bic.BestInClass.LoadTime != 1.2 {
		t.Errorf("best load time: got %v", bic.BestInClass.LoadTime)
	}
	if len(bic.ImprovementPotential) != 4 {
		t.Errorf("ImprovementPotential: got %v", bic.ImprovementPotential)
	}
	if bic.ImprovementPotential["mobile_score"] != "Medium" {
		t.Errorf("mobile potential: got %q, want Medium", bic.ImprovementPotential["mobile_score"])
	}
}

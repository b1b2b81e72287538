package services

import (
	"testing"

	"hcm-analyzer/models"
)

func TestExecutiveDashboard(t *testing.T) {
	s := &models.Session{
		Pages: []models.Page{
			{Title: "A", Module: "Core HR", LoadTime: 4.5, ComplexityScore: 0.2},
			{Title: "B", Module: "Core HR", LoadTime: 1.0, ComplexityScore: 0.75},
			{Title: "C", Module: "Learning", LoadTime: 1.0, ComplexityScore: 0.2},
		},
		BestPractices: practicesByPriority(3, 5, 1, 4, 5, 2, 3),
	}
	d := ExecutiveDashboard(s)

	wantTitles := []string{"practice B", "practice E", "practice D", "practice A", "practice G"}
	if len(d.TopRecommendations) != len(wantTitles) {
		t.Fatalf("top recommendations: got %d, want %d", len(d.TopRecommendations), len(wantTitles))
	}
	for i, want := range wantTitles {
		if d.TopRecommendations[i].Title != want {
			t.Errorf("top[%d]: got %q, want %q", i, d.TopRecommendations[i].Title, want)
		}
	}

	if len(d.PerformanceAlerts) != 2 {
		t.Fatalf("alerts: got %d, want 2", len(d.PerformanceAlerts))
	}
	if a := d.PerformanceAlerts[0]; a.Issue != "High load time" || a.Severity != "High" {
		t.Errorf("alert A: got %+v", a)
	}
	if a := d.PerformanceAlerts[1]; a.Issue != "High complexity" || a.Severity != "Medium" {
		t.Errorf("alert B: got %+v", a)
	}
	if d.ModuleSummary["Core HR"] != 2 || d.ModuleSummary["Learning"] != 1 {
		t.Errorf("ModuleSummary: got %v", d.ModuleSummary)
	}
}

package services

import (
	"reflect"
	"strings"
	"testing"

	"hcm-analyzer/models"
)

func practicesByPriority(priorities ...int) []models.BestPractice {
	out := make([]models.BestPractice, len(priorities))
	for i, p := range priorities {
		out[i] = models.BestPractice{
			Title:    "practice " + string(rune('A'+i)),
			Priority: p,
		}
	}
	return out
}

func TestBuildRoadmapTiers(t *testing.T) {
	r := BuildRoadmap(practicesByPriority(5, 4, 3, 2, 1, 5, 0, 9))

	want := models.Roadmap{
		models.TierImmediate:  {"practice A", "practice F"},
		models.TierShortTerm:  {"practice B"},
		models.TierMediumTerm: {"practice C"},
		models.TierLongTerm:   {"practice D"},
		models.TierStrategic:  {"practice E", "practice G", "practice H"},
	}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("BuildRoadmap:\ngot  %v\nwant %v", r, want)
	}
}

func TestBuildRoadmapEveryPracticeOnce(t *testing.T) {
	practices := practicesByPriority(5, 5, 3, 1, 4, 2)
	r := BuildRoadmap(practices)

	seen := make(map[string]int)
	for _, titles := range r {
		for _, title := range titles {
			seen[title]++
		}
	}
	for _, bp := range practices {
		if seen[bp.Title] != 1 {
			t.Errorf("%s appears %d times", bp.Title, seen[bp.Title])
		}
	}
}

func TestBuildRoadmapEmpty(t *testing.T) {
	r := BuildRoadmap(nil)
	if len(r) != len(models.Tiers) {
		t.Fatalf("tiers: got %d, want %d", len(r), len(models.Tiers))
	}
	for tier, titles := range r {
		if titles == nil || len(titles) != 0 {
			t.Errorf("%s: want empty non-nil list, got %v", tier, titles)
		}
	}
}

func TestBuildActionItems(t *testing.T) {
	items := BuildActionItems(practicesByPriority(5, 4, 3, 2, 1))
	if len(items.Critical) != 1 || len(items.High) != 1 || len(items.Medium) != 1 || len(items.Low) != 2 {
		t.Errorf("action items: got %+v", items)
	}
}

func TestBuildResourceRequirements(t *testing.T) {
	practices := []models.BestPractice{
		{Priority: 5, Category: "Security"},
		{Priority: 4, Category: "Performance"},
		{Priority: 4, Category: "Integration"},
		{Priority: 3, Category: "Usability"},
		{Priority: 3, Category: "Accessibility"},
	}
	req := BuildResourceRequirements(practices)

	wantDev := map[string]int{"immediate": 1, "short_term": 2, "medium_term": 2}
	if !reflect.DeepEqual(req.DevelopmentResources, wantDev) {
		t.Errorf("DevelopmentResources: got %v, want %v", req.DevelopmentResources, wantDev)
	}
	wantSkills := map[string]int{
		"frontend_development": 1,
		"backend_development":  1,
		"security_expertise":   1,
		"ux_design":            1,
	}
	if !reflect.DeepEqual(req.SkillRequirements, wantSkills) {
		t.Errorf("SkillRequirements: got %v, want %v", req.SkillRequirements, wantSkills)
	}
	if req.EstimatedTimeline["long_term"] != "6-12 months" {
		t.Errorf("long_term window: got %q", req.EstimatedTimeline["long_term"])
	}
}

func TestRecommendationsSummary(t *testing.T) {
	if got := RecommendationsSummary(nil); !strings.HasPrefix(got, "No specific recommendations") {
		t.Errorf("empty summary: got %q", got)
	}
	got := RecommendationsSummary(practicesByPriority(5, 4, 3, 1))
	want := "Generated 4 recommendations: 2 high priority, 1 medium priority, 1 low priority."
	if !strings.HasPrefix(got, want) {
		t.Errorf("summary: got %q, want prefix %q", got, want)
	}
}

func TestAnalysisNotes(t *testing.T) {
	dense := []models.Page{{ComplexityScore: 0.9}, {ComplexityScore: 0.8}}
	simple := []models.Page{{ComplexityScore: 0.1}}
	valuable := []models.Feature{{BusinessValue: models.LevelHigh}, {BusinessValue: models.LevelHigh}, {BusinessValue: models.LevelLow}}

	tests := []struct {
		name     string
		pages    []models.Page
		features []models.Feature
		want     int
		contains string
	}{
		{"empty", nil, nil, 1, "Analysis completed"},
		{"complex", dense, nil, 2, "high overall complexity"},
		{"simple", simple, nil, 2, "low complexity"},
		{"valuable", nil, valuable, 2, "strategic alignment"},
	}
	for _, tt := range tests {
		notes := AnalysisNotes(tt.pages, tt.features)
		if len(notes) != tt.want {
			t.Errorf("%s: got %d notes, want %d: %v", tt.name, len(notes), tt.want, notes)
			continue
		}
		if !strings.Contains(strings.Join(notes, " "), tt.contains) {
			t.Errorf("%s: notes %v missing %q", tt.name, notes, tt.contains)
		}
	}
}

package services

import (
	"fmt"
	"strings"

	"hcm-analyzer/models"
)

// BuildRoadmap places every practice title in exactly one tier, keeping the
// input order within each tier. Every tier key is present, even when empty.
func BuildRoadmap(practices []models.BestPractice) models.Roadmap {
	roadmap := make(models.Roadmap, len(models.Tiers))
	for _, t := range models.Tiers {
		roadmap[t] = []string{}
	}
	for _, bp := range practices {
		t := models.TierForPriority(bp.Priority)
		roadmap[t] = append(roadmap[t], bp.Title)
	}
	return roadmap
}

// BuildActionItems sorts practices into critical (5), high (4), medium (3)
// and low (anything else) action lists.
func BuildActionItems(practices []models.BestPractice) models.ActionItems {
	items := models.ActionItems{
		Critical: []models.ActionItem{},
		High:     []models.ActionItem{},
		Medium:   []models.ActionItem{},
		Low:      []models.ActionItem{},
	}
	for _, bp := range practices {
		a := models.ActionItem{
			Title:          bp.Title,
			Description:    bp.Description,
			Category:       bp.Category,
			Effort:         bp.EstimatedEffort,
			Timeline:       bp.Timeline,
			BusinessImpact: bp.BusinessImpact,
		}
		switch bp.Priority {
		case 5:
			items.Critical = append(items.Critical, a)
		case 4:
			items.High = append(items.High, a)
		case 3:
			items.Medium = append(items.Medium, a)
		default:
			items.Low = append(items.Low, a)
		}
	}
	return items
}

// skillMatchers count a practice towards a skill when its category contains
// one of the listed terms.
var skillMatchers = []struct {
	skill string
	terms []string
}{
	{"frontend_development", []string{"UI", "Accessibility"}},
	{"backend_development", []string{"Performance", "API"}},
	{"security_expertise", []string{"Security"}},
	{"ux_design", []string{"Usability"}},
}

// BuildResourceRequirements estimates staffing per tier and per skill.
func BuildResourceRequirements(practices []models.BestPractice) models.ResourceRequirements {
	req := models.ResourceRequirements{
		DevelopmentResources: map[string]int{"immediate": 0, "short_term": 0, "medium_term": 0},
		SkillRequirements:    make(map[string]int, len(skillMatchers)),
		EstimatedTimeline: map[string]string{
			"immediate_actions": models.TierImmediate.Window(),
			"short_term":        models.TierShortTerm.Window(),
			"medium_term":       models.TierMediumTerm.Window(),
			"long_term":         models.TierLongTerm.Window(),
		},
	}
	for _, m := range skillMatchers {
		req.SkillRequirements[m.skill] = 0
	}

	for _, bp := range practices {
		switch bp.Priority {
		case 5:
			req.DevelopmentResources["immediate"]++
		case 4:
			req.DevelopmentResources["short_term"]++
		case 3:
			req.DevelopmentResources["medium_term"]++
		}
		for _, m := range skillMatchers {
			for _, term := range m.terms {
				if strings.Contains(bp.Category, term) {
					req.SkillRequirements[m.skill]++
					break
				}
			}
		}
	}
	return req
}

// RecommendationsSummary is a one-line count of practices by priority band.
func RecommendationsSummary(practices []models.BestPractice) string {
	if len(practices) == 0 {
		return "No specific recommendations generated at this time."
	}
	var high, medium, low int
	for _, bp := range practices {
		switch {
		case bp.Priority >= 4:
			high++
		case bp.Priority == 3:
			medium++
		default:
			low++
		}
	}
	return fmt.Sprintf("Generated %d recommendations: %d high priority, %d medium priority, %d low priority. "+
		"Focus on high-priority items for immediate impact.", len(practices), high, medium, low)
}

// AnalysisNotes comments on overall complexity and strategic alignment.
func AnalysisNotes(pages []models.Page, features []models.Feature) []string {
	var notes []string

	if len(pages) > 0 {
		var sum float64
		for _, p := range pages {
			sum += p.ComplexityScore
		}
		avg := sum / float64(len(pages))
		switch {
		case avg > HighComplexityThreshold:
			notes = append(notes, "System shows high overall complexity, suggesting need for simplification")
		case avg < 0.3:
			notes = append(notes, "System shows low complexity, potentially indicating underutilization of capabilities")
		}
	}

	if len(features) > 0 {
		high := 0
		for _, f := range features {
			if f.BusinessValue == models.LevelHigh {
				high++
			}
		}
		if float64(high) > float64(len(features))*0.6 {
			notes = append(notes, "High proportion of high-business-value features indicates good strategic alignment")
		}
	}

	return append(notes, "Analysis completed using automated tools and industry best practices")
}

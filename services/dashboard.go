package services

import (
	"sort"

	"hcm-analyzer/models"
)

const topRecommendations = 5

// ExecutiveDashboard condenses a session into key metrics, the five most
// urgent recommendations and the pages that need attention.
func ExecutiveDashboard(s *models.Session) models.Dashboard {
	d := models.Dashboard{
		KeyMetrics: models.KeyMetrics{
			TotalPages:         s.Stats.TotalPages,
			TotalFeatures:      s.Stats.TotalFeatures,
			TotalBestPractices: s.Stats.TotalBestPractices,
			AverageComplexity:  s.Stats.AverageComplexity,
			ROIScore:           s.Stats.ROIScore,
			PerformanceScore:   s.Stats.PerformanceScore,
		},
		TopRecommendations: []models.TopRecommendation{},
		PerformanceAlerts:  []models.PerformanceAlert{},
		ModuleSummary:      make(map[string]int),
	}

	ranked := make([]models.BestPractice, len(s.BestPractices))
	copy(ranked, s.BestPractices)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Priority > ranked[j].Priority })
	if len(ranked) > topRecommendations {
		ranked = ranked[:topRecommendations]
	}
	for _, bp := range ranked {
		d.TopRecommendations = append(d.TopRecommendations, models.TopRecommendation{
			Title:          bp.Title,
			Priority:       bp.Priority,
			BusinessImpact: bp.BusinessImpact,
			Timeline:       bp.Timeline,
		})
	}

	for _, p := range s.Pages {
		d.ModuleSummary[p.Module]++
		if p.LoadTime <= LoadTimeThreshold && p.ComplexityScore <= HighComplexityThreshold {
			continue
		}
		alert := models.PerformanceAlert{Page: p.Title, Issue: "High complexity", Severity: "Medium"}
		if p.LoadTime > LoadTimeThreshold {
			alert.Issue = "High load time"
		}
		if p.LoadTime > 4.0 || p.ComplexityScore > 0.8 {
			alert.Severity = "High"
		}
		d.PerformanceAlerts = append(d.PerformanceAlerts, alert)
	}
	return d
}

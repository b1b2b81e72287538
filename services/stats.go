package services

import (
	"math"

	"hcm-analyzer/models"
	"hcm-analyzer/utils"
)

// Fixed thresholds shared by the aggregator, risk and compliance analyses.
const (
	LoadTimeThreshold                = 3.0
	HighComplexityThreshold          = 0.7
	AccessibilityIssueThreshold      = 0.7
	AccessibilityComplianceThreshold = 0.8
	TechnicalDebtThreshold           = 0.5
	SEOOptimizedThreshold            = 0.8
)

// StatsService turns record collections into SystemStats. It only reads its
// inputs.
type StatsService struct {
	logger *utils.Logger
}

func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Calculate aggregates the three collections. Each collection may be empty
// on its own; the fields derived from it are then zero.
func (s *StatsService) Calculate(pages []models.Page, features []models.Feature, practices []models.BestPractice) models.SystemStats {
	stats := models.SystemStats{
		TotalPages:         len(pages),
		TotalFeatures:      len(features),
		TotalBestPractices: len(practices),
	}

	if len(pages) > 0 {
		var complexity, loadTime, debt float64
		withWorkflows := 0
		for _, p := range pages {
			complexity += p.ComplexityScore
			loadTime += p.LoadTime
			debt += p.TechnicalDebt

			if p.ComplexityScore > HighComplexityThreshold {
				stats.HighComplexityPages++
			}
			if p.LoadTime > LoadTimeThreshold {
				stats.PerformanceIssues++
			}
			if p.AccessibilityScore < AccessibilityIssueThreshold {
				stats.AccessibilityIssues++
			}
			if p.MobileFriendly {
				stats.MobileFriendlyPages++
			}
			if p.SEOScore > SEOOptimizedThreshold {
				stats.SEOOptimizedPages++
			}
			if len(p.Workflows) > 0 {
				withWorkflows++
			}
		}

		n := float64(len(pages))
		stats.AverageComplexity = round2(complexity / n)
		stats.AverageLoadTime = round2(loadTime / n)
		stats.TechnicalDebtTotal = round2(debt)
		stats.WorkflowIntegrationScore = round2(float64(withWorkflows) / n)
		stats.FeatureDensity = round2(float64(len(features)) / n)
		stats.PerformanceScore = round2(performanceScore(pages))
	}

	if len(features) > 0 {
		var value, effort int
		for _, f := range features {
			value += f.BusinessValue.Weight()
			effort += f.ImplementationEffort.Weight()
			if f.RiskLevel == models.LevelHigh {
				stats.SecurityConcerns++
			}
		}
		maxScore := float64(len(features) * 3)
		stats.BusinessValueScore = round2(float64(value) / maxScore)
		stats.ImplementationEffortScore = round2(float64(effort) / maxScore)
	}

	stats.ROIScore = roiScore(practices)

	s.logger.Debug("[stats] %d pages, %d features, %d practices → complexity %.2f, roi %.2f",
		stats.TotalPages, stats.TotalFeatures, stats.TotalBestPractices,
		stats.AverageComplexity, stats.ROIScore)
	return stats
}

// ModuleBreakdown slices the page statistics per module, in first-seen order.
func (s *StatsService) ModuleBreakdown(pages []models.Page, features []models.Feature) []models.ModuleStats {
	var order []string
	byModule := make(map[string][]models.Page)
	moduleOf := make(map[string]string, len(pages))

	for _, p := range pages {
		if _, ok := byModule[p.Module]; !ok {
			order = append(order, p.Module)
		}
		byModule[p.Module] = append(byModule[p.Module], p)
		moduleOf[p.Title] = p.Module
	}

	featureCount := make(map[string]int)
	for _, f := range features {
		if m, ok := moduleOf[f.Page]; ok {
			featureCount[m]++
		}
	}

	out := make([]models.ModuleStats, 0, len(order))
	for _, m := range order {
		group := byModule[m]
		var complexity, loadTime float64
		critical := 0
		for _, p := range group {
			complexity += p.ComplexityScore
			loadTime += p.LoadTime
			if p.BusinessCriticality == models.LevelHigh {
				critical++
			}
		}
		n := float64(len(group))
		out = append(out, models.ModuleStats{
			Module:               m,
			TotalPages:           len(group),
			TotalFeatures:        featureCount[m],
			AverageComplexity:    round2(complexity / n),
			AverageLoadTime:      round2(loadTime / n),
			PerformanceScore:     round2(performanceScore(group)),
			HighCriticalityPages: critical,
		})
	}
	return out
}

// roiScore is Σ priority·impact over the maximum 5·3 per practice.
func roiScore(practices []models.BestPractice) float64 {
	if len(practices) == 0 {
		return 0
	}
	total := 0
	for _, bp := range practices {
		total += bp.Priority * bp.BusinessImpact.Weight()
	}
	return round2(float64(total) / float64(len(practices)*5*3))
}

// performanceScore averages a load-time score (5 s or more scores 0) with
// the inverse of complexity. Unrounded.
func performanceScore(pages []models.Page) float64 {
	if len(pages) == 0 {
		return 0
	}
	var load, simplicity float64
	for _, p := range pages {
		load += math.Max(0, 5.0-p.LoadTime)
		simplicity += 1.0 - p.ComplexityScore
	}
	n := float64(len(pages))
	return (load/n/5.0 + simplicity/n) / 2.0
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ratio is count/total, 0 when total is 0.
func ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

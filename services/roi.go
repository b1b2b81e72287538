package services

import (
	"fmt"

	"hcm-analyzer/models"
)

// ROI bucket thresholds on the per-item score (max 3.0).
const (
	HighROIThreshold   = 3.0
	MediumROIThreshold = 1.5
)

// benefitByImpact is the monetary benefit assumed for each business impact.
var benefitByImpact = map[models.Level]float64{
	models.LevelLow:    10000,
	models.LevelMedium: 50000,
	models.LevelHigh:   150000,
}

const defaultBenefit = 25000

// ItemROIScore is (priority/5) × impact weight, in [0, 3] for valid input.
func ItemROIScore(bp models.BestPractice) float64 {
	return float64(bp.Priority) / 5.0 * float64(bp.BusinessImpact.Weight())
}

// EstimatedBenefit looks up the monetary benefit of a business impact.
func EstimatedBenefit(impact models.Level) float64 {
	if v, ok := benefitByImpact[impact]; ok {
		return v
	}
	return defaultBenefit
}

// EstimateROI buckets each practice by its ROI score and totals cost (the
// lower bound of each range) against benefit. A practice with an invalid cost
// range fails the whole report so totals are never silently wrong.
func EstimateROI(practices []models.BestPractice) (models.ROIReport, error) {
	report := models.ROIReport{
		HighROIOpportunities:   []models.ROIItem{},
		MediumROIOpportunities: []models.ROIItem{},
		LowROIOpportunities:    []models.ROIItem{},
	}

	for _, bp := range practices {
		if err := bp.Cost.Validate(); err != nil {
			return models.ROIReport{}, fmt.Errorf("roi: %q: %w", bp.Title, err)
		}

		item := models.ROIItem{
			Title:            bp.Title,
			Category:         bp.Category,
			Priority:         bp.Priority,
			EstimatedCost:    bp.Cost,
			BusinessImpact:   bp.BusinessImpact,
			Timeline:         bp.Timeline,
			ROIScore:         round2(ItemROIScore(bp)),
			EstimatedBenefit: EstimatedBenefit(bp.BusinessImpact),
		}

		switch {
		case item.ROIScore >= HighROIThreshold:
			report.HighROIOpportunities = append(report.HighROIOpportunities, item)
		case item.ROIScore >= MediumROIThreshold:
			report.MediumROIOpportunities = append(report.MediumROIOpportunities, item)
		default:
			report.LowROIOpportunities = append(report.LowROIOpportunities, item)
		}

		report.TotalEstimatedCost += bp.Cost.Low
		report.TotalEstimatedBenefit += item.EstimatedBenefit
	}

	if report.TotalEstimatedCost > 0 {
		report.OverallROI = round2(report.TotalEstimatedBenefit / report.TotalEstimatedCost)
	}
	return report, nil
}

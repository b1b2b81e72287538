package services

import "hcm-analyzer/models"

// Risk bucket thresholds. They apply to the raw, uncapped risk sum.
const (
	HighRiskThreshold   = 0.7
	MediumRiskThreshold = 0.4

	// highRiskFeatureScore is assigned to features with risk_level high.
	highRiskFeatureScore = 0.8

	// Weights of the overall risk score.
	overallHighWeight   = 0.8
	overallMediumWeight = 0.4
)

// Risk categories reported in RiskAssessment.RiskCategories.
const (
	RiskCategorySecurity           = "security"
	RiskCategoryPerformance        = "performance"
	RiskCategoryCompliance         = "compliance"
	RiskCategoryBusinessContinuity = "business_continuity"
	RiskCategoryTechnicalDebt      = "technical_debt"
)

type riskPenalty struct {
	factor string
	weight float64
	hit    func(p models.Page) bool
}

var pageRiskPenalties = []riskPenalty{
	{"High load time", 0.3, func(p models.Page) bool { return p.LoadTime > LoadTimeThreshold }},
	{"High complexity", 0.3, func(p models.Page) bool { return p.ComplexityScore > HighComplexityThreshold }},
	{"Technical debt", 0.2, func(p models.Page) bool { return p.TechnicalDebt > TechnicalDebtThreshold }},
	{"Mobile unfriendly", 0.1, func(p models.Page) bool { return !p.MobileFriendly }},
	{"Accessibility issues", 0.1, func(p models.Page) bool { return p.AccessibilityScore < AccessibilityComplianceThreshold }},
}

// AssessPageRisk sums the weighted penalties that apply to the page. The sum
// is not capped at 1.0; it is rounded to 2 decimals to drop float noise.
func AssessPageRisk(p models.Page) float64 {
	var sum float64
	for _, pen := range pageRiskPenalties {
		if pen.hit(p) {
			sum += pen.weight
		}
	}
	return round2(sum)
}

// RiskFactors names the penalties that apply to the page.
func RiskFactors(p models.Page) []string {
	factors := []string{}
	for _, pen := range pageRiskPenalties {
		if pen.hit(p) {
			factors = append(factors, pen.factor)
		}
	}
	return factors
}

// RiskBucket classifies a raw risk score as high, medium or low.
func RiskBucket(score float64) models.Level {
	switch {
	case score >= HighRiskThreshold:
		return models.LevelHigh
	case score >= MediumRiskThreshold:
		return models.LevelMedium
	default:
		return models.LevelLow
	}
}

// AssessRisk buckets every page by its risk score and adds each high-risk
// feature to the high bucket.
func AssessRisk(pages []models.Page, features []models.Feature) models.RiskAssessment {
	ra := models.RiskAssessment{
		HighRiskItems:   []models.RiskItem{},
		MediumRiskItems: []models.RiskItem{},
		LowRiskItems:    []models.RiskItem{},
		RiskCategories: map[string][]string{
			RiskCategorySecurity:           {},
			RiskCategoryPerformance:        {},
			RiskCategoryCompliance:         {},
			RiskCategoryBusinessContinuity: {},
			RiskCategoryTechnicalDebt:      {},
		},
	}
	cats := ra.RiskCategories

	for _, p := range pages {
		score := AssessPageRisk(p)
		item := models.RiskItem{
			Type:        "page",
			Name:        p.Title,
			Module:      p.Module,
			RiskScore:   score,
			RiskFactors: RiskFactors(p),
		}

		bucket := RiskBucket(score)
		switch bucket {
		case models.LevelHigh:
			ra.HighRiskItems = append(ra.HighRiskItems, item)
		case models.LevelMedium:
			ra.MediumRiskItems = append(ra.MediumRiskItems, item)
		default:
			ra.LowRiskItems = append(ra.LowRiskItems, item)
		}

		if p.LoadTime > LoadTimeThreshold {
			cats[RiskCategoryPerformance] = append(cats[RiskCategoryPerformance], p.Title)
		}
		if p.TechnicalDebt > TechnicalDebtThreshold {
			cats[RiskCategoryTechnicalDebt] = append(cats[RiskCategoryTechnicalDebt], p.Title)
		}
		if !p.MobileFriendly || p.AccessibilityScore < AccessibilityComplianceThreshold {
			cats[RiskCategoryCompliance] = append(cats[RiskCategoryCompliance], p.Title)
		}
		if p.BusinessCriticality == models.LevelHigh && bucket != models.LevelLow {
			cats[RiskCategoryBusinessContinuity] = append(cats[RiskCategoryBusinessContinuity], p.Title)
		}
	}

	for _, f := range features {
		if f.RiskLevel != models.LevelHigh {
			continue
		}
		ra.HighRiskItems = append(ra.HighRiskItems, models.RiskItem{
			Type:        "feature",
			Name:        f.Name,
			Category:    f.Category,
			RiskScore:   highRiskFeatureScore,
			RiskFactors: []string{"High risk level", "Complex implementation"},
		})
		cats[RiskCategorySecurity] = append(cats[RiskCategorySecurity], f.Name)
	}

	if total := len(pages) + len(features); total > 0 {
		weighted := float64(len(ra.HighRiskItems))*overallHighWeight + float64(len(ra.MediumRiskItems))*overallMediumWeight
		ra.OverallRiskScore = round2(weighted / float64(total))
	}
	return ra
}

// Compliance rates each dimension as an exact count/total over the pages.
func Compliance(pages []models.Page) models.ComplianceSummary {
	var accessible, mobile, fast int
	for _, p := range pages {
		if p.AccessibilityScore >= AccessibilityComplianceThreshold {
			accessible++
		}
		if p.MobileFriendly {
			mobile++
		}
		if p.LoadTime <= LoadTimeThreshold {
			fast++
		}
	}
	return models.ComplianceSummary{
		Accessibility: dimension(accessible, len(pages)),
		Mobile:        dimension(mobile, len(pages)),
		Performance:   dimension(fast, len(pages)),
	}
}

func dimension(compliant, total int) models.ComplianceDimension {
	return models.ComplianceDimension{
		Compliant:      compliant,
		NonCompliant:   total - compliant,
		ComplianceRate: ratio(compliant, total),
	}
}

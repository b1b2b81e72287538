package services

import "hcm-analyzer/models"

// Benchmarks holds the reference figures the system is compared against.
type Benchmarks struct {
	IndustryLoadTime         float64
	IndustryComplexity       float64
	IndustryMobileAdoption   float64
	IndustryAccessibility    float64
	BestInClassLoadTime      float64
	BestInClassComplexity    float64
	BestInClassAccessibility float64
	BestInClassMobile        float64
}

// DefaultBenchmarks are the published industry and best-in-class figures.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		IndustryLoadTime:         2.8,
		IndustryComplexity:       0.6,
		IndustryMobileAdoption:   0.85,
		IndustryAccessibility:    0.78,
		BestInClassLoadTime:      1.2,
		BestInClassComplexity:    0.3,
		BestInClassAccessibility: 0.95,
		BestInClassMobile:        0.98,
	}
}

// KPISummary counts the performance, quality and business KPIs.
func KPISummary(pages []models.Page, practices []models.BestPractice) models.KPISummary {
	var k models.KPISummary

	var loadTime float64
	for _, p := range pages {
		loadTime += p.LoadTime
		if p.LoadTime <= LoadTimeThreshold {
			k.Performance.PagesUnder3s++
		}
		if p.LoadTime > 5.0 {
			k.Performance.PagesOver5s++
		}
		switch {
		case p.ComplexityScore <= 0.3:
			k.Performance.ComplexityDistribution.Low++
		case p.ComplexityScore <= HighComplexityThreshold:
			k.Performance.ComplexityDistribution.Medium++
		default:
			k.Performance.ComplexityDistribution.High++
		}

		if p.MobileFriendly {
			k.Quality.MobileFriendlyPages++
		}
		if p.AccessibilityScore >= AccessibilityComplianceThreshold {
			k.Quality.HighAccessibilityPages++
		}
		if p.TechnicalDebt <= 0.3 {
			k.Quality.LowTechnicalDebtPages++
		}
	}
	if len(pages) > 0 {
		k.Performance.AveragePageLoadTime = round2(loadTime / float64(len(pages)))
	}

	for _, bp := range practices {
		if bp.Priority >= 4 {
			k.Business.HighPriorityRecommendations++
		}
		if bp.Priority == 5 {
			k.Business.ImmediateActions++
		}
		if bp.BusinessImpact == models.LevelHigh {
			k.Business.HighBusinessImpact++
		}
	}
	return k
}

// IndustryBenchmarks compares the system's averages with industry figures.
func (b Benchmarks) IndustryBenchmarks(pages []models.Page, stats models.SystemStats) models.IndustryBenchmarks {
	c := Compliance(pages)
	return models.IndustryBenchmarks{
		Performance: models.PerformanceBenchmark{
			IndustryAverageLoadTime:   b.IndustryLoadTime,
			IndustryAverageComplexity: b.IndustryComplexity,
			YourAverageLoadTime:       stats.AverageLoadTime,
			YourAverageComplexity:     stats.AverageComplexity,
			PerformancePercentile:     Percentile(stats.AverageComplexity),
		},
		Quality: models.QualityBenchmark{
			IndustryMobileAdoption:          b.IndustryMobileAdoption,
			IndustryAccessibilityCompliance: b.IndustryAccessibility,
			YourMobileAdoption:              c.Mobile.ComplianceRate,
			YourAccessibilityCompliance:     c.Accessibility.ComplianceRate,
		},
	}
}

// BestInClass compares the system with best-in-class targets and grades the
// gap on each metric.
func (b Benchmarks) BestInClass(pages []models.Page, stats models.SystemStats) models.BestInClassComparison {
	var accessibility float64
	for _, p := range pages {
		accessibility += p.AccessibilityScore
	}
	yours := models.ExperienceMetrics{
		LoadTime:           stats.AverageLoadTime,
		ComplexityScore:    stats.AverageComplexity,
		AccessibilityScore: round2(ratioF(accessibility, len(pages))),
		MobileScore:        Compliance(pages).Mobile.ComplianceRate,
	}
	best := models.ExperienceMetrics{
		LoadTime:           b.BestInClassLoadTime,
		ComplexityScore:    b.BestInClassComplexity,
		AccessibilityScore: b.BestInClassAccessibility,
		MobileScore:        b.BestInClassMobile,
	}

	return models.BestInClassComparison{
		BestInClass: best,
		Yours:       yours,
		ImprovementPotential: map[string]string{
			"load_time":           improvementPotential(yours.LoadTime, best.LoadTime, true),
			"complexity_score":    improvementPotential(yours.ComplexityScore, best.ComplexityScore, true),
			"accessibility_score": improvementPotential(yours.AccessibilityScore, best.AccessibilityScore, false),
			"mobile_score":        improvementPotential(yours.MobileScore, best.MobileScore, false),
		},
	}
}

// Percentile ranks an average complexity; lower complexity ranks higher.
func Percentile(complexity float64) string {
	switch {
	case complexity <= 0.3:
		return "Top 10%"
	case complexity <= 0.5:
		return "Top 25%"
	case complexity <= 0.7:
		return "Top 50%"
	case complexity <= 0.9:
		return "Top 75%"
	default:
		return "Bottom 25%"
	}
}

// improvementPotential grades the relative gap between current and target:
// above 100% is High, above 20% is Medium.
func improvementPotential(current, target float64, lowerIsBetter bool) string {
	gap, base := target-current, current
	if lowerIsBetter {
		gap, base = current-target, target
	}
	if base <= 0 {
		return "High"
	}
	switch rel := gap / base; {
	case rel > 1.0:
		return "High"
	case rel > 0.2:
		return "Medium"
	default:
		return "Low"
	}
}

func ratioF(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

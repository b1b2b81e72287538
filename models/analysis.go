package models

import "time"

// SystemStats is recomputed from its source collections on every run and is
// never stored on its own. Scores are in [0,1]; counts are integers.
type SystemStats struct {
	TotalPages                int     `json:"total_pages"`
	TotalFeatures             int     `json:"total_features"`
	TotalBestPractices        int     `json:"total_best_practices"`
	AverageComplexity         float64 `json:"average_complexity"`
	AverageLoadTime           float64 `json:"average_load_time"`
	HighComplexityPages       int     `json:"high_complexity_pages"`
	PerformanceIssues         int     `json:"performance_issues"`
	SecurityConcerns          int     `json:"security_concerns"`
	AccessibilityIssues       int     `json:"accessibility_issues"`
	MobileFriendlyPages       int     `json:"mobile_friendly_pages"`
	SEOOptimizedPages         int     `json:"seo_optimized_pages"`
	WorkflowIntegrationScore  float64 `json:"workflow_integration_score"`
	FeatureDensity            float64 `json:"feature_density"`
	TechnicalDebtTotal        float64 `json:"technical_debt_total"`
	BusinessValueScore        float64 `json:"business_value_score"`
	ImplementationEffortScore float64 `json:"implementation_effort_score"`
	ROIScore                  float64 `json:"roi_score"`
	PerformanceScore          float64 `json:"performance_score"`
}

// RiskItem is one page or feature placed in a risk bucket.
type RiskItem struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Module      string   `json:"module,omitempty"`
	Category    string   `json:"category,omitempty"`
	RiskScore   float64  `json:"risk_score"`
	RiskFactors []string `json:"risk_factors"`
}

// RiskAssessment buckets pages and high-risk features.
type RiskAssessment struct {
	HighRiskItems    []RiskItem          `json:"high_risk_items"`
	MediumRiskItems  []RiskItem          `json:"medium_risk_items"`
	LowRiskItems     []RiskItem          `json:"low_risk_items"`
	RiskCategories   map[string][]string `json:"risk_categories"`
	OverallRiskScore float64             `json:"overall_risk_score"`
}

// ROIItem is one best practice scored for return on investment.
type ROIItem struct {
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	Priority         int       `json:"priority"`
	EstimatedCost    CostRange `json:"estimated_cost"`
	BusinessImpact   Level     `json:"business_impact"`
	Timeline         string    `json:"timeline"`
	ROIScore         float64   `json:"roi_score"`
	EstimatedBenefit float64   `json:"estimated_benefit"`
}

// ROIReport groups opportunities by ROI bucket and carries the totals.
type ROIReport struct {
	HighROIOpportunities   []ROIItem `json:"high_roi_opportunities"`
	MediumROIOpportunities []ROIItem `json:"medium_roi_opportunities"`
	LowROIOpportunities    []ROIItem `json:"low_roi_opportunities"`
	TotalEstimatedCost     float64   `json:"total_estimated_cost"`
	TotalEstimatedBenefit  float64   `json:"total_estimated_benefit"`
	OverallROI             float64   `json:"overall_roi"`
}

type ComplexityDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type PerformanceKPIs struct {
	AveragePageLoadTime    float64                `json:"average_page_load_time"`
	PagesUnder3s           int                    `json:"pages_under_3s"`
	PagesOver5s            int                    `json:"pages_over_5s"`
	ComplexityDistribution ComplexityDistribution `json:"complexity_distribution"`
}

type QualityKPIs struct {
	MobileFriendlyPages    int `json:"mobile_friendly_pages"`
	HighAccessibilityPages int `json:"high_accessibility_pages"`
	LowTechnicalDebtPages  int `json:"low_technical_debt_pages"`
}

type BusinessKPIs struct {
	HighPriorityRecommendations int `json:"high_priority_recommendations"`
	ImmediateActions            int `json:"immediate_actions"`
	HighBusinessImpact          int `json:"high_business_impact"`
}

// KPISummary is the performance/quality/business KPI report.
type KPISummary struct {
	Performance PerformanceKPIs `json:"performance_kpis"`
	Quality     QualityKPIs     `json:"quality_kpis"`
	Business    BusinessKPIs    `json:"business_kpis"`
}

// ComplianceDimension reports one pass/fail dimension over the page set.
type ComplianceDimension struct {
	Compliant      int     `json:"compliant"`
	NonCompliant   int     `json:"non_compliant"`
	ComplianceRate float64 `json:"compliance_rate"`
}

// ComplianceSummary rates are exact count/total, 0 for an empty page set.
type ComplianceSummary struct {
	Accessibility ComplianceDimension `json:"accessibility_compliance"`
	Mobile        ComplianceDimension `json:"mobile_compliance"`
	Performance   ComplianceDimension `json:"performance_compliance"`
}

type PerformanceBenchmark struct {
	IndustryAverageLoadTime   float64 `json:"industry_average_load_time"`
	IndustryAverageComplexity float64 `json:"industry_average_complexity"`
	YourAverageLoadTime       float64 `json:"your_average_load_time"`
	YourAverageComplexity     float64 `json:"your_average_complexity"`
	PerformancePercentile     string  `json:"performance_percentile"`
}

type QualityBenchmark struct {
	IndustryMobileAdoption          float64 `json:"industry_mobile_adoption"`
	IndustryAccessibilityCompliance float64 `json:"industry_accessibility_compliance"`
	YourMobileAdoption              float64 `json:"your_mobile_adoption"`
	YourAccessibilityCompliance     float64 `json:"your_accessibility_compliance"`
}

// IndustryBenchmarks compares the analysed system with industry averages.
type IndustryBenchmarks struct {
	Performance PerformanceBenchmark `json:"performance_benchmarks"`
	Quality     QualityBenchmark     `json:"quality_benchmarks"`
}

type ExperienceMetrics struct {
	LoadTime           float64 `json:"load_time"`
	ComplexityScore    float64 `json:"complexity_score"`
	AccessibilityScore float64 `json:"accessibility_score"`
	MobileScore        float64 `json:"mobile_score"`
}

// BestInClassComparison compares the system against best-in-class targets.
type BestInClassComparison struct {
	BestInClass          ExperienceMetrics `json:"best_in_class_metrics"`
	Yours                ExperienceMetrics `json:"your_metrics"`
	ImprovementPotential map[string]string `json:"improvement_potential"`
}

// ModuleStats is the per-module slice of the page statistics.
type ModuleStats struct {
	Module               string  `json:"module"`
	TotalPages           int     `json:"total_pages"`
	TotalFeatures        int     `json:"total_features"`
	AverageComplexity    float64 `json:"average_complexity"`
	AverageLoadTime      float64 `json:"average_load_time"`
	PerformanceScore     float64 `json:"performance_score"`
	HighCriticalityPages int     `json:"high_criticality_pages"`
}

// ActionItem is a best practice projected for the action list.
type ActionItem struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Effort         Level  `json:"effort"`
	Timeline       string `json:"timeline"`
	BusinessImpact Level  `json:"business_impact"`
}

type ActionItems struct {
	Critical []ActionItem `json:"critical"`
	High     []ActionItem `json:"high"`
	Medium   []ActionItem `json:"medium"`
	Low      []ActionItem `json:"low"`
}

type ResourceRequirements struct {
	DevelopmentResources map[string]int    `json:"development_resources"`
	SkillRequirements    map[string]int    `json:"skill_requirements"`
	EstimatedTimeline    map[string]string `json:"estimated_timeline"`
}

// AnalysisConfig describes what a run analyses and which reports it builds.
type AnalysisConfig struct {
	SystemName                string   `json:"system_name" yaml:"system_name"`
	SystemVersion             string   `json:"system_version" yaml:"system_version"`
	ModulesToAnalyze          []string `json:"modules_to_analyze" yaml:"modules_to_analyze"`
	AnalysisDepth             string   `json:"analysis_depth" yaml:"analysis_depth"`
	IncludePerformanceMetrics bool     `json:"include_performance_metrics" yaml:"include_performance_metrics"`
	IncludeSecurityAnalysis   bool     `json:"include_security_analysis" yaml:"include_security_analysis"`
	IncludeBestPractices      bool     `json:"include_best_practices" yaml:"include_best_practices"`
	OutputFormats             []string `json:"output_formats" yaml:"output_formats"`
}

// Session bundles one analysis run: its records and everything derived
// from them. Optional reports are nil when their config flag is off.
type Session struct {
	ID                     string                 `json:"session_id"`
	Timestamp              time.Time              `json:"timestamp"`
	Config                 AnalysisConfig         `json:"config"`
	Pages                  []Page                 `json:"pages"`
	Features               []Feature              `json:"features"`
	BestPractices          []BestPractice         `json:"best_practices"`
	Stats                  SystemStats            `json:"stats"`
	Metadata               map[string]string      `json:"metadata"`
	AnalysisNotes          []string               `json:"analysis_notes"`
	RecommendationsSummary string                 `json:"recommendations_summary"`
	Roadmap                Roadmap                `json:"implementation_roadmap"`
	Risk                   *RiskAssessment        `json:"risk_assessment,omitempty"`
	ROI                    ROIReport              `json:"roi_analysis"`
	KPI                    *KPISummary            `json:"kpi_summary,omitempty"`
	Compliance             ComplianceSummary      `json:"compliance_summary"`
	Benchmarks             *IndustryBenchmarks    `json:"industry_benchmarks,omitempty"`
	BestInClass            *BestInClassComparison `json:"best_in_class_comparison,omitempty"`
	Modules                []ModuleStats          `json:"module_breakdown"`
	ActionItems            ActionItems            `json:"action_items"`
	Resources              ResourceRequirements   `json:"resource_requirements"`
}

type KeyMetrics struct {
	TotalPages         int     `json:"total_pages"`
	TotalFeatures      int     `json:"total_features"`
	TotalBestPractices int     `json:"total_best_practices"`
	AverageComplexity  float64 `json:"average_complexity"`
	ROIScore           float64 `json:"roi_score"`
	PerformanceScore   float64 `json:"performance_score"`
}

type TopRecommendation struct {
	Title          string `json:"title"`
	Priority       int    `json:"priority"`
	BusinessImpact Level  `json:"business_impact"`
	Timeline       string `json:"timeline"`
}

type PerformanceAlert struct {
	Page     string `json:"page"`
	Issue    string `json:"issue"`
	Severity string `json:"severity"`
}

// Dashboard is the executive summary of a session.
type Dashboard struct {
	KeyMetrics         KeyMetrics          `json:"key_metrics"`
	TopRecommendations []TopRecommendation `json:"top_recommendations"`
	PerformanceAlerts  []PerformanceAlert  `json:"performance_alerts"`
	ModuleSummary      map[string]int      `json:"module_summary"`
}

package models

import "time"

// Level is the three-step scale used for criticality, value, effort and risk.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Weight maps a level onto 1..3. Unknown values weigh as low.
func (l Level) Weight() int {
	switch l {
	case LevelMedium:
		return 2
	case LevelHigh:
		return 3
	default:
		return 1
	}
}

// Page is a synthetic representation of one UI page in the analysed system.
// TechnicalDebt is always round2(ComplexityScore * 0.8) and is only set by
// the generator.
type Page struct {
	Index               int       `json:"index"`
	Title               string    `json:"title"`
	URL                 string    `json:"url"`
	Module              string    `json:"module"`
	ComplexityScore     float64   `json:"complexity_score"`
	LoadTime            float64   `json:"load_time"`
	FeatureCount        int       `json:"feature_count"`
	Forms               []string  `json:"forms"`
	Reports             []string  `json:"reports"`
	Workflows           []string  `json:"workflows"`
	Keywords            []string  `json:"keywords"`
	Description         string    `json:"description"`
	ParentPages         []string  `json:"parent_pages"`
	ChildPages          []string  `json:"child_pages"`
	NavigationPath      []string  `json:"navigation_path"`
	PerformanceNotes    []string  `json:"performance_notes"`
	Recommendations     []string  `json:"recommendations"`
	LastUpdated         time.Time `json:"last_updated"`
	UsageFrequency      string    `json:"usage_frequency"`
	BusinessCriticality Level     `json:"business_criticality"`
	TechnicalDebt       float64   `json:"technical_debt"`
	AccessibilityScore  float64   `json:"accessibility_score"`
	MobileFriendly      bool      `json:"mobile_friendly"`
	SEOScore            float64   `json:"seo_score"`
}

// Feature is a synthetic representation of one functional capability.
type Feature struct {
	ID                     int      `json:"id"`
	Name                   string   `json:"name"`
	Page                   string   `json:"page,omitempty"`
	Description            string   `json:"description"`
	Category               string   `json:"category"`
	Complexity             Level    `json:"complexity"`
	BusinessValue          Level    `json:"business_value"`
	ImplementationEffort   Level    `json:"implementation_effort"`
	Dependencies           []string `json:"dependencies"`
	APIEndpoints           []string `json:"api_endpoints"`
	ConfigurationOptions   []string `json:"configuration_options"`
	UsageExamples          []string `json:"usage_examples"`
	CommonIssues           []string `json:"common_issues"`
	PerformanceImpact      Level    `json:"performance_impact"`
	SecurityConsiderations []string `json:"security_considerations"`
	Keywords               []string `json:"keywords"`
	RelatedFeatures        []string `json:"related_features"`
	DocumentationQuality   string   `json:"documentation_quality"`
	TestingCoverage        Level    `json:"testing_coverage"`
	MaintenanceEffort      Level    `json:"maintenance_effort"`
	ROITimeline            string   `json:"roi_timeline"`
	RiskLevel              Level    `json:"risk_level"`
}

// BestPractice is a recommendation with a priority (1..5, 5 most urgent)
// and a cost/benefit profile.
type BestPractice struct {
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Category               string    `json:"category"`
	Priority               int       `json:"priority"`
	BusinessImpact         Level     `json:"business_impact"`
	EstimatedEffort        Level     `json:"estimated_effort"`
	ImplementationSteps    []string  `json:"implementation_steps"`
	Prerequisites          []string  `json:"prerequisites"`
	RequiredResources      []string  `json:"required_resources"`
	ConfigurationChanges   []string  `json:"configuration_changes"`
	Benefits               []string  `json:"benefits"`
	BusinessImpactAnalysis string    `json:"business_impact_analysis"`
	RiskMitigation         []string  `json:"risk_mitigation"`
	Examples               []string  `json:"examples"`
	UseCases               []string  `json:"use_cases"`
	SuccessStories         []string  `json:"success_stories"`
	MetricsToTrack         []string  `json:"metrics_to_track"`
	Timeline               string    `json:"timeline"`
	Cost                   CostRange `json:"cost_estimate"`
	TeamRequirements       []string  `json:"team_requirements"`
}

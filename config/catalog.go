package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModuleCatalog is one HCM module and the page names it contains.
type ModuleCatalog struct {
	Name  string   `yaml:"name"`
	Pages []string `yaml:"pages"`
}

// Catalog holds every list the generator draws from. Modules are ordered so
// page indices stay reproducible.
type Catalog struct {
	Modules                []ModuleCatalog `yaml:"modules"`
	CommonFeatures         []string        `yaml:"common_features"`
	FeatureCategories      []string        `yaml:"feature_categories"`
	StopWords              []string        `yaml:"stop_words"`
	FormTemplates          []string        `yaml:"form_templates"`
	ReportTemplates        []string        `yaml:"report_templates"`
	WorkflowTemplates      []string        `yaml:"workflow_templates"`
	DocumentationQualities []string        `yaml:"documentation_qualities"`
	ROITimelines           []string        `yaml:"roi_timelines"`
	DailyTerms             []string        `yaml:"daily_terms"`
	WeeklyTerms            []string        `yaml:"weekly_terms"`
	HighCriticalityTerms   []string        `yaml:"high_criticality_terms"`
	MediumCriticalityTerms []string        `yaml:"medium_criticality_terms"`
}

// DefaultCatalog returns a fresh copy of the built-in catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Modules: []ModuleCatalog{
			{Name: "Core HR", Pages: []string{
				"Employee Self Service", "Manager Self Service", "Organization Management",
				"Position Management", "Job Management", "Grade Management",
			}},
			{Name: "Recruitment", Pages: []string{
				"Job Requisitions", "Candidate Management", "Interview Management",
				"Offer Management", "Onboarding", "Background Checks",
			}},
			{Name: "Performance", Pages: []string{
				"Goal Management", "Performance Reviews", "360 Feedback",
				"Calibration", "Succession Planning", "Career Development",
			}},
			{Name: "Compensation", Pages: []string{
				"Salary Planning", "Bonus Management", "Stock Options",
				"Benefits Administration", "Payroll Integration", "Total Rewards",
			}},
			{Name: "Learning", Pages: []string{
				"Course Catalog", "Training Assignments", "Certifications",
				"Skills Management", "Learning Paths", "Compliance Training",
			}},
		},
		CommonFeatures: []string{
			"User Authentication", "Role-Based Access Control", "Data Export",
			"Report Generation", "Workflow Engine", "Notification System",
			"Audit Logging", "Data Validation", "Bulk Operations",
			"API Integration", "Mobile Responsiveness", "Search Functionality",
		},
		FeatureCategories: []string{
			"Core Functionality", "User Interface", "Data Management",
			"Integration", "Security", "Performance",
		},
		StopWords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
		},
		FormTemplates: []string{
			"Data Entry Form", "Search Form", "Filter Form", "Configuration Form",
			"Approval Form", "Review Form", "Settings Form", "Import Form",
		},
		ReportTemplates: []string{
			"Summary Report", "Detailed Report", "Analytics Report", "Trend Report",
			"Comparison Report", "Performance Report", "Status Report", "Audit Report",
		},
		WorkflowTemplates: []string{
			"Approval Workflow", "Review Workflow", "Notification Workflow",
			"Data Processing Workflow", "Integration Workflow", "Maintenance Workflow",
		},
		DocumentationQualities: []string{"poor", "fair", "good", "excellent"},
		ROITimelines:           []string{"3 months", "6 months", "1 year", "2 years"},
		DailyTerms:             []string{"dashboard", "overview", "home"},
		WeeklyTerms:            []string{"report", "analytics"},
		HighCriticalityTerms:   []string{"employee", "payroll", "security"},
		MediumCriticalityTerms: []string{"report", "analytics"},
	}
}

// LoadCatalog returns the default catalog, overlaid with the YAML file at
// path when one is given. Keys missing from the file keep their defaults.
func LoadCatalog(path string) (*Catalog, error) {
	cat := DefaultCatalog()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %q: %w", path, err)
	}
	return cat, nil
}

// Validate makes sure every list used for modulo selection is non-empty.
func (c *Catalog) Validate() error {
	required := []struct {
		key  string
		list []string
	}{
		{"feature_categories", c.FeatureCategories},
		{"form_templates", c.FormTemplates},
		{"report_templates", c.ReportTemplates},
		{"workflow_templates", c.WorkflowTemplates},
		{"documentation_qualities", c.DocumentationQualities},
		{"roi_timelines", c.ROITimelines},
	}
	var errs []error
	for _, r := range required {
		if len(r.list) == 0 {
			errs = append(errs, fmt.Errorf("%s must not be empty", r.key))
		}
	}
	for i, m := range c.Modules {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("modules[%d] has no name", i))
		}
	}
	return errors.Join(errs...)
}

// Select keeps only the named modules, in catalog order. An empty selection
// keeps everything. Names not found in the catalog are returned as missing.
func (c *Catalog) Select(names []string) (selected []ModuleCatalog, missing []string) {
	if len(names) == 0 {
		return c.Modules, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, m := range c.Modules {
		if want[m.Name] {
			selected = append(selected, m)
			delete(want, m.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			missing = append(missing, n)
		}
	}
	return selected, missing
}

// YAML renders the catalog in the format LoadCatalog reads.
func (c *Catalog) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

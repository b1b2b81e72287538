package services

import "hcm-analyzer/models"

// practiceRule emits its practice once when trigger holds for the record set.
type practiceRule struct {
	name     string
	trigger  func(pages []models.Page, features []models.Feature) bool
	practice func() models.BestPractice
}

// practiceRules run in this order, which is also the output order.
var practiceRules = []practiceRule{
	{name: "page-load", trigger: anySlowPage, practice: optimizeLoadTimes},
	{name: "rbac", trigger: always, practice: roleBasedAccessControl},
	{name: "mobile", trigger: notAllMobile, practice: mobileResponsiveness},
	{name: "api-design", trigger: always, practice: standardizeAPIDesign},
	{name: "wcag", trigger: anyInaccessiblePage, practice: wcagCompliance},
}

// GenerateBestPractices evaluates every rule against the whole record set.
func (g *Generator) GenerateBestPractices(pages []models.Page, features []models.Feature) []models.BestPractice {
	var out []models.BestPractice
	for _, r := range practiceRules {
		if r.trigger(pages, features) {
			out = append(out, r.practice())
			g.logger.Debug("[generator] Rule %q triggered", r.name)
		}
	}
	g.logger.Info("[generator] Generated %d best practices", len(out))
	return out
}

func always([]models.Page, []models.Feature) bool { return true }

func anySlowPage(pages []models.Page, _ []models.Feature) bool {
	for _, p := range pages {
		if p.LoadTime > LoadTimeThreshold {
			return true
		}
	}
	return false
}

// notAllMobile is false for an empty page set.
func notAllMobile(pages []models.Page, _ []models.Feature) bool {
	for _, p := range pages {
		if !p.MobileFriendly {
			return true
		}
	}
	return false
}

func anyInaccessiblePage(pages []models.Page, _ []models.Feature) bool {
	for _, p := range pages {
		if p.AccessibilityScore < AccessibilityComplianceThreshold {
			return true
		}
	}
	return false
}

func optimizeLoadTimes() models.BestPractice {
	return models.BestPractice{
		Title:           "Optimize Page Load Times",
		Description:     "Implement performance optimizations to reduce page load times below 3 seconds",
		Category:        "Performance",
		Priority:        4,
		BusinessImpact:  models.LevelHigh,
		EstimatedEffort: models.LevelMedium,
		ImplementationSteps: []string{
			"Implement code splitting and lazy loading",
			"Optimize image and asset delivery",
			"Enable browser caching",
			"Minimize HTTP requests",
		},
		Prerequisites:          []string{"Performance monitoring tools", "Development team access"},
		RequiredResources:      []string{"Frontend developers", "Performance testing tools"},
		ConfigurationChanges:   []string{"Enable compression", "Configure CDN"},
		Benefits:               []string{"Improved user experience", "Reduced bounce rates", "Better SEO"},
		BusinessImpactAnalysis: "Faster page loads improve user satisfaction and productivity",
		RiskMitigation:         []string{"Test changes in staging environment", "Monitor performance metrics"},
		Examples:               []string{"Google PageSpeed Insights", "WebPageTest"},
		UseCases:               []string{"High-traffic pages", "Mobile users", "International users"},
		SuccessStories:         []string{"Company X reduced load times by 40%"},
		MetricsToTrack:         []string{"Page load time", "Time to interactive", "First contentful paint"},
		Timeline:               "4-6 weeks",
		Cost:                   models.CostRange{Low: 15000, High: 25000},
		TeamRequirements:       []string{"Frontend developers", "DevOps engineers", "QA testers"},
	}
}

func roleBasedAccessControl() models.BestPractice {
	return models.BestPractice{
		Title:           "Implement Role-Based Access Control",
		Description:     "Establish comprehensive role-based access control for all system features",
		Category:        "Security",
		Priority:        5,
		BusinessImpact:  models.LevelHigh,
		EstimatedEffort: models.LevelHigh,
		ImplementationSteps: []string{
			"Define user roles and permissions",
			"Implement access control matrix",
			"Configure authentication mechanisms",
			"Set up audit logging",
		},
		Prerequisites:          []string{"Security policy defined", "User roles identified"},
		RequiredResources:      []string{"Security team", "System administrators"},
		ConfigurationChanges:   []string{"User role configuration", "Permission settings"},
		Benefits:               []string{"Data security", "Compliance", "Risk reduction"},
		BusinessImpactAnalysis: "Protects sensitive HR data and ensures compliance",
		RiskMitigation:         []string{"Regular security audits", "Access reviews"},
		Examples:               []string{"Oracle Identity Manager", "Active Directory"},
		UseCases:               []string{"Employee data access", "Manager permissions", "Admin access"},
		SuccessStories:         []string{"Company Y improved security posture by 60%"},
		MetricsToTrack:         []string{"Failed access attempts", "Permission changes", "Security incidents"},
		Timeline:               "8-12 weeks",
		Cost:                   models.CostRange{Low: 30000, High: 50000},
		TeamRequirements:       []string{"Security specialists", "System administrators", "Compliance team"},
	}
}

func mobileResponsiveness() models.BestPractice {
	return models.BestPractice{
		Title:           "Improve Mobile Responsiveness",
		Description:     "Ensure all pages are fully responsive and mobile-friendly",
		Category:        "Usability",
		Priority:        3,
		BusinessImpact:  models.LevelMedium,
		EstimatedEffort: models.LevelMedium,
		ImplementationSteps: []string{
			"Audit current mobile experience",
			"Implement responsive design patterns",
			"Test on various devices",
			"Optimize touch interactions",
		},
		Prerequisites:          []string{"Mobile design guidelines", "Device testing plan"},
		RequiredResources:      []string{"UI/UX designers", "Frontend developers"},
		ConfigurationChanges:   []string{"CSS media queries", "Touch-friendly controls"},
		Benefits:               []string{"Better mobile experience", "Increased accessibility", "Modern appearance"},
		BusinessImpactAnalysis: "Improves productivity for mobile users",
		RiskMitigation:         []string{"User testing", "Progressive enhancement"},
		Examples:               []string{"Bootstrap", "Material Design"},
		UseCases:               []string{"Field workers", "Remote employees", "Mobile-first users"},
		SuccessStories:         []string{"Company Z increased mobile usage by 35%"},
		MetricsToTrack:         []string{"Mobile usage", "Mobile conversion rates", "User satisfaction"},
		Timeline:               "6-8 weeks",
		Cost:                   models.CostRange{Low: 20000, High: 35000},
		TeamRequirements:       []string{"UI/UX designers", "Frontend developers", "QA testers"},
	}
}

func standardizeAPIDesign() models.BestPractice {
	return models.BestPractice{
		Title:           "Standardize API Design",
		Description:     "Establish consistent API design patterns and documentation",
		Category:        "Integration",
		Priority:        4,
		BusinessImpact:  models.LevelMedium,
		EstimatedEffort: models.LevelMedium,
		ImplementationSteps: []string{
			"Define API design standards",
			"Create API documentation templates",
			"Implement versioning strategy",
			"Set up API testing framework",
		},
		Prerequisites:          []string{"API strategy defined", "Development standards"},
		RequiredResources:      []string{"Backend developers", "API architects"},
		ConfigurationChanges:   []string{"API gateway configuration", "Documentation setup"},
		Benefits:               []string{"Easier integration", "Better developer experience", "Reduced errors"},
		BusinessImpactAnalysis: "Streamlines system integration and maintenance",
		RiskMitigation:         []string{"Backward compatibility", "Comprehensive testing"},
		Examples:               []string{"REST API guidelines", "OpenAPI specification"},
		UseCases:               []string{"Third-party integrations", "Mobile apps", "External systems"},
		SuccessStories:         []string{"Company A reduced integration time by 50%"},
		MetricsToTrack:         []string{"API response times", "Integration success rates", "Developer satisfaction"},
		Timeline:               "6-10 weeks",
		Cost:                   models.CostRange{Low: 25000, High: 40000},
		TeamRequirements:       []string{"Backend developers", "API architects", "DevOps engineers"},
	}
}

func wcagCompliance() models.BestPractice {
	return models.BestPractice{
		Title:           "Achieve WCAG 2.1 AA Compliance",
		Description:     "Ensure all pages meet WCAG 2.1 AA accessibility standards",
		Category:        "Accessibility",
		Priority:        3,
		BusinessImpact:  models.LevelMedium,
		EstimatedEffort: models.LevelHigh,
		ImplementationSteps: []string{
			"Conduct accessibility audit",
			"Implement ARIA labels",
			"Ensure keyboard navigation",
			"Test with screen readers",
		},
		Prerequisites:          []string{"Accessibility guidelines", "Testing tools"},
		RequiredResources:      []string{"Accessibility specialists", "Frontend developers"},
		ConfigurationChanges:   []string{"ARIA attributes", "CSS focus indicators"},
		Benefits:               []string{"Legal compliance", "Broader user access", "Better UX"},
		BusinessImpactAnalysis: "Ensures compliance and accessibility for all users",
		RiskMitigation:         []string{"Regular audits", "User testing"},
		Examples:               []string{"WAVE tool", "axe-core", "NVDA screen reader"},
		UseCases:               []string{"Users with disabilities", "Compliance requirements", "Legal protection"},
		SuccessStories:         []string{"Company B achieved 95% WCAG compliance"},
		MetricsToTrack:         []string{"Accessibility score", "WCAG violations", "User feedback"},
		Timeline:               "10-16 weeks",
		Cost:                   models.CostRange{Low: 35000, High: 60000},
		TeamRequirements:       []string{"Accessibility specialists", "Frontend developers", "QA testers"},
	}
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hcm-analyzer/config"
	"hcm-analyzer/models"
	"hcm-analyzer/utils"
)

// ErrNoModules is returned when none of the requested modules is in the
// catalog.
var ErrNoModules = errors.New("no catalog modules selected")

const (
	platformVersion = "1.0.0"
	analysisEngine  = "HCM Analysis Platform"
)

// Analyzer runs a full analysis session: generate, aggregate, then derive
// every report from the aggregated records.
type Analyzer struct {
	catalog    *config.Catalog
	stats      *StatsService
	benchmarks Benchmarks
	logger     *utils.Logger
	now        func() time.Time
}

func NewAnalyzer(catalog *config.Catalog, logger *utils.Logger) *Analyzer {
	return &Analyzer{
		catalog:    catalog,
		stats:      NewStatsService(logger),
		benchmarks: DefaultBenchmarks(),
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for session timestamps and the
// generator's reference date.
func (a *Analyzer) SetClock(now func() time.Time) { a.now = now }

// SetBenchmarks replaces the industry and best-in-class reference figures.
func (a *Analyzer) SetBenchmarks(b Benchmarks) { a.benchmarks = b }

// Analyze generates the records described by cfg and derives every report
// from them.
func (a *Analyzer) Analyze(cfg models.AnalysisConfig) (*models.Session, error) {
	a.logger.Info("[analyzer] Starting analysis for %s", cfg.SystemName)

	modules, missing := a.catalog.Select(cfg.ModulesToAnalyze)
	for _, m := range missing {
		a.logger.Warn("[analyzer] Module %q not in catalog, skipping", m)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("analyzer: select %v: %w", cfg.ModulesToAnalyze, ErrNoModules)
	}

	now := a.now()
	gen := NewGenerator(a.catalog, now, a.logger)

	pages := gen.GeneratePages(modules)
	features := gen.GenerateFeatures(pages)
	var practices []models.BestPractice
	if cfg.IncludeBestPractices {
		practices = gen.GenerateBestPractices(pages, features)
	}

	s := &models.Session{
		ID:            uuid.NewString(),
		Timestamp:     now.UTC(),
		Config:        cfg,
		Pages:         pages,
		Features:      features,
		BestPractices: practices,
	}
	if err := a.Rebuild(s); err != nil {
		return nil, err
	}

	a.logger.Info("[analyzer] Session %s: %d pages, %d features, %d best practices",
		s.ID, len(pages), len(features), len(practices))
	return s, nil
}

// Rebuild recomputes every derived field of s from its records. Sessions
// loaded from storage carry only their header and records.
func (a *Analyzer) Rebuild(s *models.Session) error {
	if s.Pages == nil {
		s.Pages = []models.Page{}
	}
	if s.Features == nil {
		s.Features = []models.Feature{}
	}
	if s.BestPractices == nil {
		s.BestPractices = []models.BestPractice{}
	}
	pages, features, practices := s.Pages, s.Features, s.BestPractices

	roi, err := EstimateROI(practices)
	if err != nil {
		return fmt.Errorf("analyzer: session %s: %w", s.ID, err)
	}

	s.Stats = a.stats.Calculate(pages, features, practices)
	s.ROI = roi
	s.Compliance = Compliance(pages)
	s.Modules = a.stats.ModuleBreakdown(pages, features)
	s.Roadmap = BuildRoadmap(practices)
	s.ActionItems = BuildActionItems(practices)
	s.Resources = BuildResourceRequirements(practices)
	s.RecommendationsSummary = RecommendationsSummary(practices)
	s.AnalysisNotes = AnalysisNotes(pages, features)

	s.Risk = nil
	if s.Config.IncludeSecurityAnalysis {
		risk := AssessRisk(pages, features)
		s.Risk = &risk
	}

	s.KPI, s.Benchmarks, s.BestInClass = nil, nil, nil
	if s.Config.IncludePerformanceMetrics {
		kpi := KPISummary(pages, practices)
		bench := a.benchmarks.IndustryBenchmarks(pages, s.Stats)
		best := a.benchmarks.BestInClass(pages, s.Stats)
		s.KPI, s.Benchmarks, s.BestInClass = &kpi, &bench, &best
	}

	if s.Metadata == nil {
		s.Metadata = a.metadata(s)
	}
	return nil
}

func (a *Analyzer) metadata(s *models.Session) map[string]string {
	return map[string]string{
		"title":            s.Config.SystemName + " Analysis Report",
		"version":          s.Config.SystemVersion,
		"generated_at":     s.Timestamp.Format(time.RFC3339),
		"platform_version": platformVersion,
		"analysis_engine":  analysisEngine,
		"hash_version":     HashVersion,
	}
}

package storage

import (
	"io"
	"testing"
	"time"

	"hcm-analyzer/config"
	"hcm-analyzer/models"
	"hcm-analyzer/services"
	"hcm-analyzer/utils"
)

func quietLogger() *utils.Logger {
	return utils.NewLoggerTo(io.Discard, false)
}

func testAnalyzer(at time.Time) *services.Analyzer {
	a := services.NewAnalyzer(config.DefaultCatalog(), quietLogger())
	a.SetClock(func() time.Time { return at })
	return a
}

func sampleSession(t *testing.T) *models.Session {
	t.Helper()
	s, err := testAnalyzer(time.Date(2024, 3, 15, 9, 30, 0, 123456789, time.UTC)).Analyze(models.AnalysisConfig{
		SystemName:                "Oracle HCM Cloud",
		SystemVersion:             "23D",
		ModulesToAnalyze:          []string{"Core HR", "Learning"},
		IncludePerformanceMetrics: true,
		IncludeSecurityAnalysis:   true,
		IncludeBestPractices:      true,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return s
}

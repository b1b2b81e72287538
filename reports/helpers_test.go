package reports

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

func sampleSession(t *testing.T) *models.Session {
	t.Helper()
	a := services.NewAnalyzer(config.DefaultCatalog(), quietLogger())
	a.SetClock(func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) })
	s, err := a.Analyze(models.AnalysisConfig{
		SystemName:                "Oracle HCM Cloud",
		SystemVersion:             "23D",
		IncludePerformanceMetrics: true,
		IncludeSecurityAnalysis:   true,
		IncludeBestPractices:      true,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return s
}

package services

import (
	"fmt"
	"io"
	"strings"

	"hcm-analyzer/models"
)

// Print writes the console summary of a session.
func (s *StatsService) Print(w io.Writer, session *models.Session) {
	sep := strings.Repeat("═", 58)
	thin := strings.Repeat("─", 58)
	st := session.Stats

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 %s ANALYSIS\033[0m\n", strings.ToUpper(session.Config.SystemName))
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Session              : \033[1m%s\033[0m\n", session.ID)
	fmt.Fprintf(w, "  Pages analysed       : \033[1m%d\033[0m\n", st.TotalPages)
	fmt.Fprintf(w, "  Features analysed    : \033[1m%d\033[0m\n", st.TotalFeatures)
	fmt.Fprintf(w, "  Best practices       : \033[1m%d\033[0m\n", st.TotalBestPractices)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Key Scores\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Average complexity   : \033[1;32m%.2f\033[0m\n", st.AverageComplexity)
	fmt.Fprintf(w, "  Average load time    : \033[1;32m%.2fs\033[0m\n", st.AverageLoadTime)
	fmt.Fprintf(w, "  Business value score : \033[1;32m%.2f\033[0m\n", st.BusinessValueScore)
	fmt.Fprintf(w, "  ROI score            : \033[1;32m%.2f\033[0m\n", st.ROIScore)
	fmt.Fprintf(w, "  Technical debt total : \033[1;31m%.2f\033[0m\n", st.TechnicalDebtTotal)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Issues\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  High complexity pages : %d\n", st.HighComplexityPages)
	fmt.Fprintf(w, "  Performance issues    : %d\n", st.PerformanceIssues)
	fmt.Fprintf(w, "  Accessibility issues  : %d\n", st.AccessibilityIssues)
	fmt.Fprintf(w, "  Security concerns     : %d\n", st.SecurityConcerns)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Implementation Roadmap\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	for _, t := range models.Tiers {
		titles := session.Roadmap[t]
		if len(titles) == 0 {
			continue
		}
		fmt.Fprintf(w, "  \033[1m%s (%s)\033[0m\n", t, t.Window())
		for _, title := range titles {
			fmt.Fprintf(w, "    • %s\n", truncate(title, 50))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Pages by Module\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(session.Modules) == 0 {
		fmt.Fprintf(w, "  No module data\n")
	}
	for _, m := range session.Modules {
		bar := strings.Repeat("█", m.TotalPages)
		fmt.Fprintf(w, "  %-24s %s (%d)\n", truncate(m.Module, 22), bar, m.TotalPages)
	}

	fmt.Fprintf(w, "\n  %s\n", session.RecommendationsSummary)
	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

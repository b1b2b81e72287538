package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hcm-analyzer/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run an analysis, store it and write the reports",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg := rt.cfg
	logger := rt.logger
	logger.Info("[cli] === HCM Analysis starting ===")
	logger.Info("[cli] Config: system: %s %s | depth: %s | storage: %s | formats: %v",
		cfg.SystemName, cfg.SystemVersion, cfg.AnalysisDepth, cfg.StorageDriver, cfg.OutputFormats)

	session, err := rt.analyzer.Analyze(cfg.Analysis())
	if err != nil {
		return err
	}

	if rt.store != nil {
		if err := rt.store.SaveSession(ctx, session); err != nil {
			logger.Error("[cli] Session store failed: %v", err)
		} else {
			logger.Info("[cli] Session %s stored (%s)", session.ID, cfg.StorageDriver)
		}
	}

	assembler, err := rt.newAssembler()
	if err != nil {
		return err
	}
	paths, err := assembler.Write(ctx, session)
	if err != nil {
		logger.Error("[cli] Some reports failed: %v", err)
	}

	services.NewStatsService(logger).Print(os.Stdout, session)

	fmt.Printf("  Done. %d report files → %s\n\n", len(paths), filepath.Join(cfg.OutputDir, session.ID))
	return nil
}

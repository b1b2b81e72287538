package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [session-id]",
	Short: "Rewrite the reports of a stored session (default: the latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if rt.store == nil {
		return fmt.Errorf("report needs a storage driver, got %q", rt.cfg.StorageDriver)
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	} else if id, err = rt.store.LatestSessionID(ctx); err != nil {
		return err
	}

	session, err := rt.store.LoadSession(ctx, id)
	if err != nil {
		return err
	}
	if err := rt.analyzer.Rebuild(session); err != nil {
		return err
	}
	rt.logger.Info("[cli] Loaded session %s from %s", session.ID, session.Timestamp.Format("2006-01-02 15:04"))

	assembler, err := rt.newAssembler()
	if err != nil {
		return err
	}
	paths, err := assembler.Write(ctx, session)
	fmt.Printf("  %d report files → %s\n", len(paths), filepath.Join(rt.cfg.OutputDir, session.ID))
	return err
}

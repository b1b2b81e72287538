package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hcm-analyzer/api"
	"hcm-analyzer/models"
	"hcm-analyzer/reports"
	"hcm-analyzer/storage"
)

var (
	httpAddr   string
	loadLatest bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the current analysis session over HTTP",
	Long: `serve exposes the analysis over a JSON API, an HTML report at /report and
Prometheus metrics at /metrics. It starts from the latest stored session
when there is one and runs a fresh analysis otherwise.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&httpAddr, "addr", "", "Listen address (env HTTP_ADDR)")
	serveCmd.Flags().BoolVar(&loadLatest, "load-latest", true, "Start from the latest stored session")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	addr := rt.cfg.HTTPAddr
	if cmd.Flags().Changed("addr") {
		addr = httpAddr
	}

	md, err := reports.NewMarkdownRenderer()
	if err != nil {
		return err
	}
	html, err := reports.NewHTMLRenderer(md)
	if err != nil {
		return err
	}

	server := api.NewServer(rt.analyzer, rt.cfg.Analysis(), rt.store, html, rt.logger)

	session, err := rt.initialSession(ctx)
	if err != nil {
		return err
	}
	server.SetSession(session)

	return server.ListenAndServe(ctx, addr)
}

// initialSession loads the latest stored session or analyses a new one.
func (rt *app) initialSession(ctx context.Context) (*models.Session, error) {
	if rt.store != nil && loadLatest {
		id, err := rt.store.LatestSessionID(ctx)
		switch {
		case err == nil:
			session, err := rt.store.LoadSession(ctx, id)
			if err != nil {
				return nil, err
			}
			if err := rt.analyzer.Rebuild(session); err != nil {
				return nil, err
			}
			rt.logger.Info("[cli] Serving stored session %s", session.ID)
			return session, nil
		case !errors.Is(err, storage.ErrSessionNotFound):
			return nil, err
		}
	}

	session, err := rt.analyzer.Analyze(rt.cfg.Analysis())
	if err != nil {
		return nil, err
	}
	if rt.store != nil {
		if err := rt.store.SaveSession(ctx, session); err != nil {
			rt.logger.Error("[cli] Session store failed: %v", err)
		}
	}
	return session, nil
}

// Package cmd contains the hcm-analyzer CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hcm-analyzer/config"
	"hcm-analyzer/reports"
	"hcm-analyzer/services"
	"hcm-analyzer/storage"
	"hcm-analyzer/utils"
)

// Version is reported by --version.
var Version = "1.0.0"

// Global flags. Each one overrides its environment variable when set.
var (
	verbose       bool
	catalogPath   string
	storageDriver string
	sqlitePath    string
	outputDir     string
	outputFormats []string
	modules       []string
	systemName    string
	systemVersion string
	analysisDepth string
)

var rootCmd = &cobra.Command{
	Use:   "hcm-analyzer",
	Short: "Analyse an HCM system and report on its pages, features and best practices",
	Long: `hcm-analyzer builds a synthetic inventory of an HCM system's pages and
features, aggregates it into statistics, and derives risk, compliance, ROI,
KPI and roadmap reports from it.

Running without a subcommand is the same as 'hcm-analyzer analyze'.

Examples:
  hcm-analyzer                                   # analyse, store and write reports
  hcm-analyzer analyze --modules "Core HR" -f md # one module, Markdown only
  hcm-analyzer report                            # rewrite reports for the latest stored session
  hcm-analyzer serve --addr :9090                # HTTP API over the latest session
  hcm-analyzer catalog > catalog.yaml            # dump the built-in catalog`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&catalogPath, "catalog", "", "YAML catalog overlaid on the built-in one (env CATALOG_PATH)")
	pf.StringVar(&storageDriver, "storage", "", "Storage driver: postgres | sqlite | none (env STORAGE_DRIVER)")
	pf.StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file (env SQLITE_PATH)")
	pf.StringVarP(&outputDir, "output", "o", "", "Report output directory (env OUTPUT_DIR)")
	pf.StringSliceVarP(&outputFormats, "format", "f", nil, "Report formats: csv,json,markdown,html,pdf (env OUTPUT_FORMATS)")
	pf.StringSliceVar(&modules, "modules", nil, "Modules to analyse, default all (env MODULES)")
	pf.StringVar(&systemName, "system", "", "System name (env SYSTEM_NAME)")
	pf.StringVar(&systemVersion, "system-version", "", "System version (env SYSTEM_VERSION)")
	pf.StringVar(&analysisDepth, "depth", "", "Analysis depth: basic | standard | comprehensive (env ANALYSIS_DEPTH)")
}

// loadConfig reads the environment and applies the flags that were set.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	flags := cmd.Flags()

	if flags.Changed("verbose") {
		cfg.Debug = verbose
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if flags.Changed("storage") {
		cfg.StorageDriver = storageDriver
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = sqlitePath
	}
	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("format") {
		cfg.OutputFormats = outputFormats
	}
	if flags.Changed("modules") {
		cfg.Modules = modules
	}
	if flags.Changed("system") {
		cfg.SystemName = systemName
	}
	if flags.Changed("system-version") {
		cfg.SystemVersion = systemVersion
	}
	if flags.Changed("depth") {
		cfg.AnalysisDepth = analysisDepth
	}
	return cfg
}

// app is what every command needs once configuration is settled.
type app struct {
	cfg      *config.Config
	logger   *utils.Logger
	analyzer *services.Analyzer
	store    storage.SessionStore
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg := loadConfig(cmd)
	logger := utils.NewLogger()
	logger.SetVerbose(cfg.Debug)

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		analyzer: services.NewAnalyzer(catalog, logger),
		store:    store,
	}, nil
}

func (rt *app) Close() {
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			rt.logger.Warn("[cli] Closing store: %v", err)
		}
	}
}

func newRetry(cfg *config.Config, logger *utils.Logger) *utils.RetryConfig {
	return &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
		Logger:      logger,
	}
}

// openStore returns a nil store for the "none" driver.
func openStore(ctx context.Context, cfg *config.Config, logger *utils.Logger) (storage.SessionStore, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		store, err := storage.NewPostgresStore(ctx, cfg.DSN(), newRetry(cfg, logger), logger)
		if err != nil {
			logger.Error("[cli] Failed to connect to PostgreSQL: %v", err)
			logger.Error("[cli] Make sure Docker is running: docker compose up -d")
			return nil, err
		}
		return store, nil
	case config.DriverSQLite:
		store, err := storage.NewSQLiteStore(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverNone, "":
		logger.Info("[cli] Storage disabled, sessions are not persisted")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// newAssembler builds the report assembler. PDF is dropped with a warning
// when no browser is installed.
func (rt *app) newAssembler() (*reports.Assembler, error) {
	formats := make([]string, 0, len(rt.cfg.OutputFormats))
	var pdf *reports.PDFRenderer
	for _, f := range rt.cfg.OutputFormats {
		if f != reports.FormatPDF {
			formats = append(formats, f)
			continue
		}
		pdf = reports.NewPDFRenderer(rt.cfg.ChromeBin, rt.cfg.PDFTimeout, newRetry(rt.cfg, rt.logger), rt.logger)
		if !pdf.Available() {
			rt.logger.Warn("[cli] No Chrome/Chromium found, skipping PDF report (set CHROME_BIN)")
			continue
		}
		formats = append(formats, f)
	}
	return reports.NewAssembler(rt.cfg.OutputDir, formats, rt.cfg.MaxConcurrency, pdf, rt.logger)
}

// cmd/quickfind/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/giftig/quickfind/internal/backend"
	"github.com/giftig/quickfind/internal/config"
	"github.com/giftig/quickfind/internal/finder"
	"github.com/giftig/quickfind/internal/metrics"
	"github.com/giftig/quickfind/internal/query"
)

var rootCmd = &cobra.Command{
	Use:   "quickfind [flags] <term>",
	Short: "Search source code for definitions, classes, imports and usages",
	Long: `quickfind compiles a structured search intent into a source-aware regex,
delegates the search to ripgrep or ag, and reformats the hits for editors
and scripts.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runSearch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagDef    bool
	flagClass  bool
	flagImport bool
	flagFile   bool
	flagUsage  bool

	flagList     bool
	flagCoords   bool
	flagQuickfix bool

	flagSingle      bool
	flagCleanImport bool
	flagBackend     string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&flagDef, "def", "d", false, "Search for defs / methods / functions")
	flags.BoolVarP(&flagClass, "class", "c", false, "Search for classes / traits / types")
	flags.BoolVarP(&flagImport, "import", "i", false, "Search for imports")
	flags.BoolVarP(&flagFile, "file", "f", false, "Search for filenames")
	flags.BoolVarP(&flagUsage, "usage", "u", false, "Search for usages (any appearance of the term)")

	flags.BoolVarP(&flagList, "list", "l", false, "List resulting filenames only")
	flags.BoolVarP(&flagCoords, "coords", "x", false, "Print file:line:col coordinates for each hit")
	flags.BoolVarP(&flagQuickfix, "quickfix", "q", false, "Print hits in vim's quickfix format")

	flags.BoolVarP(&flagSingle, "single", "1", false, "Provide only the first hit")
	flags.BoolVar(&flagCleanImport, "clean-import", false,
		"Only valid with -i: print an import statement importing only the given term")
	flags.StringVar(&flagBackend, "backend", "", "Search backend to use (auto, rg or ag)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	intent, err := buildIntent(args[0])
	if err != nil {
		return err
	}

	cfg, logger, runner, err := setup()
	if err != nil {
		return err
	}

	var metricsLogger *metrics.Logger
	if cfg.Logging.Metrics {
		metricsLogger = openMetrics(logger)
		if metricsLogger != nil {
			defer metricsLogger.Close()
		}
	}

	f := finder.New(runner, cfg.Search.Exclude, metricsLogger, logger)

	results, err := f.Run(cmd.Context(), intent)
	if err != nil {
		return err
	}

	for _, line := range results {
		fmt.Println(line)
	}
	return nil
}

// buildIntent resolves the mode and format flag groups, applying defaults,
// and validates the result. At most one flag per group may be set.
func buildIntent(term string) (query.Intent, error) {
	mode := query.ModeFile
	modeCount := 0
	for _, m := range []struct {
		set  bool
		mode query.Mode
	}{
		{flagDef, query.ModeDefinition},
		{flagClass, query.ModeClass},
		{flagImport, query.ModeImport},
		{flagFile, query.ModeFile},
		{flagUsage, query.ModeUsage},
	} {
		if m.set {
			mode = m.mode
			modeCount++
		}
	}
	if modeCount > 1 {
		return query.Intent{}, fmt.Errorf("multiple search modes specified")
	}

	var format query.Format
	formatCount := 0
	for _, f := range []struct {
		set    bool
		format query.Format
	}{
		{flagList, query.FormatFileList},
		{flagCoords, query.FormatCoordinates},
		{flagQuickfix, query.FormatQuickfix},
	} {
		if f.set {
			format = f.format
			formatCount++
		}
	}
	if formatCount > 1 {
		return query.Intent{}, fmt.Errorf("multiple output formats specified")
	}

	if flagCleanImport {
		if formatCount > 0 {
			return query.Intent{}, fmt.Errorf("--clean-import cannot be combined with another output format")
		}
		format = query.FormatCleanImport
	} else if formatCount == 0 {
		// Default output: quickfix for content searches, a bare file list
		// for filename searches.
		if mode == query.ModeFile {
			format = query.FormatFileList
		} else {
			format = query.FormatQuickfix
		}
	}

	return query.NewIntent(term, mode, format, flagSingle)
}

// setup loads config and builds the logger and backend runner shared by the
// search and watch commands.
func setup() (*config.Config, *slog.Logger, backend.Runner, error) {
	cfg, err := config.LoadConfig(config.DefaultPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.Logging.Level),
	}))

	name := flagBackend
	if name == "" {
		name = cfg.Backend.Name
	}

	runner, err := backend.Detect(name, cfg.Backend.ExtraArgs)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, runner, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// openMetrics opens the JSONL metrics log; metrics are best-effort and never
// fatal, so failures just disable them.
func openMetrics(logger *slog.Logger) *metrics.Logger {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	path := filepath.Join(homeDir, ".local", "share", "quickfind", "metrics.jsonl")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil
	}

	m, err := metrics.NewLogger(path)
	if err != nil {
		logger.Warn("metrics log unavailable", "error", err)
		return nil
	}
	return m
}

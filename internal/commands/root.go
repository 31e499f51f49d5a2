package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/buildinfo"
	"github.com/qrt-closure/qrtrecon/internal/classify"
	"github.com/qrt-closure/qrtrecon/internal/config"
	"github.com/qrt-closure/qrtrecon/internal/extract"
	"github.com/qrt-closure/qrtrecon/internal/logger"
	"github.com/qrt-closure/qrtrecon/internal/model"
	"github.com/qrt-closure/qrtrecon/internal/platform"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "qrtrecon",
		Short:   "Reconciliation and diagnostics for the QRT Closure Platform",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to qrtrecon.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newExtractCommand(&configPath))
	rootCmd.AddCommand(newClassifyCommand(&configPath))
	rootCmd.AddCommand(newReconcileCommand(&configPath))
	rootCmd.AddCommand(newVerifyCommand(&configPath))
	rootCmd.AddCommand(newRepairCommand(&configPath))
	rootCmd.AddCommand(newCalibrateCommand(&configPath))
	rootCmd.AddCommand(newUploadCommand(&configPath))

	return rootCmd
}

// loadConfig loads the environment, the YAML config and initializes logging.
func loadConfig(path string) (*config.Config, error) {
	config.LoadEnv()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel)
	return cfg, nil
}

func newExtractor(cfg *config.Config) (*extract.Extractor, error) {
	threshold, err := decimal.NewFromString(cfg.Thresholds.Significance)
	if err != nil {
		return nil, fmt.Errorf("invalid significance threshold %q: %w", cfg.Thresholds.Significance, err)
	}
	return extract.NewExtractor(extract.DefaultRegistry(), threshold), nil
}

func newClassifier(cfg *config.Config) *classify.Classifier {
	keywords := make(map[model.Category][]string, len(cfg.Keywords))
	for cat, words := range cfg.Keywords {
		keywords[model.Category(cat)] = words
	}
	return classify.New(keywords)
}

func newClient(cfg *config.Config) *platform.Client {
	return platform.NewClient(cfg.Platform.BaseURL, config.Token(), platform.WithTimeout(cfg.Timeout()))
}

func matchTolerance(cfg *config.Config) (decimal.Decimal, error) {
	if cfg.Thresholds.MatchTolerance == "" {
		return decimal.NewFromInt(1), nil
	}
	tol, err := decimal.NewFromString(cfg.Thresholds.MatchTolerance)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid match tolerance %q: %w", cfg.Thresholds.MatchTolerance, err)
	}
	return tol, nil
}

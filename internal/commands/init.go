package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/config"
)

func newInitCommand() *cobra.Command {
	var baseURL string
	var tenantID string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a qrtrecon working directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, baseURL, tenantID)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:5000", "platform base URL")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant id (required)")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func runInit(dir, baseURL, tenantID string) error {
	for _, d := range []string{"documents", "exports", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(baseURL, tenantID)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cfg.Calibrations), []byte("calibrations: []\n"), 0o644); err != nil {
		return fmt.Errorf("writing calibrations: %w", err)
	}

	fmt.Printf("Initialized qrtrecon working directory at %s (tenant %s)\n", dir, tenantID)
	return nil
}

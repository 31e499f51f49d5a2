package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/extract"
	"github.com/qrt-closure/qrtrecon/internal/logger"
)

func newExtractCommand(configPath *string) *cobra.Command {
	var showCells bool

	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "List significant numeric values in source documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			ex, err := newExtractor(cfg)
			if err != nil {
				return err
			}
			return runExtract(ex, args, showCells)
		},
	}

	cmd.Flags().BoolVar(&showCells, "cells", false, "print every significant cell")

	return cmd
}

func runExtract(ex *extract.Extractor, files []string, showCells bool) error {
	grand := decimal.Zero
	failed := 0

	for _, path := range files {
		cells, err := ex.File(path)
		if err != nil {
			// A bad file never aborts the remaining files.
			logger.L.Warn("skipping file", "file", path, "error", err)
			failed++
			continue
		}

		if showCells {
			for _, c := range cells {
				fmt.Printf("%s  %s!R%dC%d  %s\n", path, c.Sheet, c.Row, c.Col, c.Value.StringFixed(2))
			}
		}

		sum := extract.Sum(cells)
		grand = grand.Add(sum)
		fmt.Printf("%s: %d significant cells, sum %s\n", path, len(cells), sum.StringFixed(2))
	}

	fmt.Printf("total: %s\n", grand.StringFixed(2))
	if failed == len(files) {
		return fmt.Errorf("no readable files among %d given", len(files))
	}
	return nil
}

package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/aggregate"
	"github.com/qrt-closure/qrtrecon/internal/compare"
	"github.com/qrt-closure/qrtrecon/internal/config"
	"github.com/qrt-closure/qrtrecon/internal/extract"
	"github.com/qrt-closure/qrtrecon/internal/logger"
	"github.com/qrt-closure/qrtrecon/internal/model"
)

func newReconcileCommand(configPath *string) *cobra.Command {
	var applyCalibrations bool

	cmd := &cobra.Command{
		Use:   "reconcile <file>...",
		Short: "Extract, classify and compare document totals against configured targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runReconcile(cfg, args, applyCalibrations)
		},
	}

	cmd.Flags().BoolVar(&applyCalibrations, "apply-calibrations", false, "apply active calibration factors to observed totals")

	return cmd
}

func runReconcile(cfg *config.Config, files []string, applyCalibrations bool) error {
	ex, err := newExtractor(cfg)
	if err != nil {
		return err
	}
	classifier := newClassifier(cfg)
	registry := extract.DefaultRegistry()

	tol, err := matchTolerance(cfg)
	if err != nil {
		return err
	}

	// Extract + classify every document into per-category sums.
	var classified []aggregate.Classified
	for _, path := range files {
		cells, err := ex.File(path)
		if err != nil {
			logger.L.Warn("skipping file", "file", path, "error", err)
			continue
		}

		res := classifyFile(classifier, registry, path)
		classified = append(classified, aggregate.Classified{
			Category: res.Category,
			Amount:   extract.Sum(cells),
		})
	}

	totals := aggregate.CategoryTotals(classified)
	if unknown, ok := totals[model.CategoryUnknown]; ok && !unknown.IsZero() {
		fmt.Printf("warning: %s in unclassified documents excluded from reconciliation\n", unknown.StringFixed(2))
	}

	store := compare.NewStore(cfg.Calibrations)
	now := time.Now()
	mismatches := 0

	for _, cat := range model.Categories() {
		targetStr, ok := cfg.Targets[string(cat)]
		if !ok {
			continue
		}
		target, err := decimal.NewFromString(targetStr)
		if err != nil {
			return fmt.Errorf("invalid target for %s: %w", cat, err)
		}

		observed := totals[cat]
		if applyCalibrations {
			cal, found, err := store.Active(cat, now)
			if err != nil {
				return err
			}
			if found {
				logger.L.Warn("applying calibration factor",
					"category", cat, "factor", cal.Factor.String(), "derived_from", cal.DerivedFrom, "valid_until", cal.ValidUntil)
				observed = cal.Apply(observed)
			}
		}

		r := compare.Compare(observed, target, tol)
		if r.Match {
			fmt.Printf("%s: MATCH observed %s target %s\n", cat, r.Observed.StringFixed(2), r.Target.StringFixed(2))
			continue
		}

		mismatches++
		fmt.Printf("%s: MISMATCH observed %s target %s difference %s (%s%% of target)\n",
			cat, r.Observed.StringFixed(2), r.Target.StringFixed(2), r.Difference.StringFixed(2), r.PercentOfTarget)
	}

	if mismatches > 0 {
		return fmt.Errorf("%d categor%s did not reconcile", mismatches, plural(mismatches, "y", "ies"))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/compare"
	"github.com/qrt-closure/qrtrecon/internal/model"
)

func newCalibrateCommand(configPath *string) *cobra.Command {
	calCmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Manage explicit calibration records",
		Long: "Calibrations are named, attributed, expiring correction factors.\n" +
			"Prefer fixing the extraction or classification root cause; derive a\n" +
			"calibration only when a discrepancy is understood but not yet fixable.",
	}
	calCmd.AddCommand(newCalibrateDeriveCommand(configPath))
	calCmd.AddCommand(newCalibrateListCommand(configPath))
	return calCmd
}

func newCalibrateDeriveCommand(configPath *string) *cobra.Command {
	var category, target, observed, note string
	var validFor time.Duration

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a calibration factor from a target/observed pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			targetDec, err := decimal.NewFromString(target)
			if err != nil {
				return fmt.Errorf("invalid target: %w", err)
			}
			observedDec, err := decimal.NewFromString(observed)
			if err != nil {
				return fmt.Errorf("invalid observed: %w", err)
			}

			cal, err := compare.Derive(model.Category(category), targetDec, observedDec, note, validFor, time.Now())
			if err != nil {
				return err
			}

			if err := compare.NewStore(cfg.Calibrations).Add(cal); err != nil {
				return err
			}

			fmt.Printf("calibration %s: %s factor %s, valid until %s\n",
				cal.ID, cal.Category, cal.Factor, cal.ValidUntil.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "ledger category (required)")
	cmd.Flags().StringVar(&target, "target", "", "reference total (required)")
	cmd.Flags().StringVar(&observed, "observed", "", "observed total (required)")
	cmd.Flags().StringVar(&note, "note", "", "where the target came from")
	cmd.Flags().DurationVar(&validFor, "valid-for", 30*24*time.Hour, "validity window")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("observed")

	return cmd
}

func newCalibrateListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List calibration records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			cals, err := compare.NewStore(cfg.Calibrations).Load()
			if err != nil {
				return err
			}
			if len(cals) == 0 {
				fmt.Println("no calibrations")
				return nil
			}

			now := time.Now()
			for _, c := range cals {
				status := "active"
				if c.Expired(now) {
					status = "expired"
				}
				fmt.Printf("%s  %s  factor %s  %s  until %s  (%s)\n",
					c.ID, c.Category, c.Factor, status, c.ValidUntil.Format("2006-01-02"), c.DerivedFrom)
			}
			return nil
		},
	}
}

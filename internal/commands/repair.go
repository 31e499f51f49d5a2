package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/config"
	"github.com/qrt-closure/qrtrecon/internal/model"
	"github.com/qrt-closure/qrtrecon/internal/repair"
)

func newRepairCommand(configPath *string) *cobra.Command {
	repairCmd := &cobra.Command{
		Use:   "repair",
		Short: "Tenant-scoped administrative repairs against the platform database",
	}
	repairCmd.AddCommand(newRepairDedupeCommand(configPath))
	repairCmd.AddCommand(newRepairRetypeCommand(configPath))
	repairCmd.AddCommand(newRepairRenameCommand(configPath))
	return repairCmd
}

type repairFunc func(ctx context.Context, cfg *config.Config, svc *repair.Service, args []string) error

// withRepairService opens the platform database and builds a tenant-scoped
// repair service around fn.
func withRepairService(configPath *string, fn repairFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		if cfg.Repair.DatabasePath == "" {
			return fmt.Errorf("no repair database path configured (set repair.database_path or QRT_DATABASE_PATH)")
		}

		db, err := repair.Open(cfg.Repair.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		svc, err := repair.NewService(db, cfg.Platform.TenantID, filepath.Dir(*configPath))
		if err != nil {
			return err
		}
		return fn(cmd.Context(), cfg, svc, args)
	}
}

// regenerate re-invokes the platform's generation endpoint after a repair,
// so downstream journal entries reflect the corrected rows.
func regenerate(ctx context.Context, cfg *config.Config, periodStr string) error {
	result, err := newClient(cfg).GenerateJournalEntries(ctx, periodStr)
	if err != nil {
		return fmt.Errorf("regenerating journal entries: %w", err)
	}
	fmt.Printf("regenerated %d journal entries for %s\n", result.Generated, result.Period)
	return nil
}

func newRepairDedupeCommand(configPath *string) *cobra.Command {
	var regeneratePeriod string

	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Delete duplicate journal entries, keeping the lowest id per group",
		Args:  cobra.NoArgs,
		RunE: withRepairService(configPath, func(ctx context.Context, cfg *config.Config, svc *repair.Service, _ []string) error {
			deleted, err := svc.DedupeJournalEntries(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d duplicate journal entries\n", deleted)

			if regeneratePeriod != "" {
				return regenerate(ctx, cfg, regeneratePeriod)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&regeneratePeriod, "regenerate", "", "regenerate journal entries for this period afterwards")

	return cmd
}

func newRepairRetypeCommand(configPath *string) *cobra.Command {
	var regeneratePeriod string

	cmd := &cobra.Command{
		Use:   "retype <document-id> <document-type>",
		Short: "Reassign a document's type",
		Args:  cobra.ExactArgs(2),
		RunE: withRepairService(configPath, func(ctx context.Context, cfg *config.Config, svc *repair.Service, args []string) error {
			updated, err := svc.ReassignDocumentType(ctx, args[0], model.DocumentType(args[1]))
			if err != nil {
				return err
			}
			if updated == 0 {
				return fmt.Errorf("document %s not found for tenant %s", args[0], cfg.Platform.TenantID)
			}
			fmt.Printf("document %s reassigned to %s\n", args[0], args[1])

			if regeneratePeriod != "" {
				return regenerate(ctx, cfg, regeneratePeriod)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&regeneratePeriod, "regenerate", "", "regenerate journal entries for this period afterwards")

	return cmd
}

func newRepairRenameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <document-id> <new-name>",
		Short: "Rename an uploaded document",
		Args:  cobra.ExactArgs(2),
		RunE: withRepairService(configPath, func(ctx context.Context, cfg *config.Config, svc *repair.Service, args []string) error {
			updated, err := svc.RenameDocument(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if updated == 0 {
				return fmt.Errorf("document %s not found for tenant %s", args[0], cfg.Platform.TenantID)
			}
			fmt.Printf("document %s renamed to %q\n", args[0], args[1])
			return nil
		}),
	}
}

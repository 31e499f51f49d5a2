package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/extract"
	"github.com/qrt-closure/qrtrecon/internal/model"
	"github.com/qrt-closure/qrtrecon/internal/period"
)

// categoryDocType maps a classified category to the platform document type.
var categoryDocType = map[model.Category]model.DocumentType{
	model.CategorySales:        model.DocTypeSalesRegister,
	model.CategoryPurchase:     model.DocTypePurchaseRegister,
	model.CategoryBank:         model.DocTypeBankStatement,
	model.CategoryTrialBalance: model.DocTypeTrialBalance,
}

func newUploadCommand(configPath *string) *cobra.Command {
	var docType, periodStr string
	var generate bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a source document to the platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			if periodStr == "" {
				periodStr = period.Current(time.Now()).String()
			}
			if _, err := period.Parse(periodStr); err != nil {
				return err
			}

			path := args[0]

			// Without an explicit type, classify the document first.
			dt := model.DocumentType(docType)
			if docType == "" {
				res := classifyFile(newClassifier(cfg), extract.DefaultRegistry(), path)
				mapped, ok := categoryDocType[res.Category]
				if !ok {
					return fmt.Errorf("cannot classify %s, pass --type explicitly", filepath.Base(path))
				}
				dt = mapped
				fmt.Printf("classified %s as %s\n", filepath.Base(path), dt)
			}
			if !dt.Valid() {
				return fmt.Errorf("invalid document type %q", dt)
			}

			client := newClient(cfg)
			ctx := cmd.Context()

			doc, err := client.UploadDocument(ctx, path, dt, periodStr)
			if err != nil {
				return err
			}
			fmt.Printf("uploaded %s as document %s (%s)\n", doc.OriginalName, doc.ID, doc.DocumentType)

			if generate {
				result, err := client.GenerateJournalEntries(ctx, periodStr)
				if err != nil {
					return err
				}
				fmt.Printf("generated %d journal entries for %s\n", result.Generated, result.Period)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docType, "type", "", "document type (default: classify automatically)")
	cmd.Flags().StringVar(&periodStr, "period", "", "reporting period (default: current quarter)")
	cmd.Flags().BoolVar(&generate, "generate", false, "trigger journal entry generation after upload")

	return cmd
}

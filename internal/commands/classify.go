package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qrt-closure/qrtrecon/internal/classify"
	"github.com/qrt-closure/qrtrecon/internal/extract"
	"github.com/qrt-closure/qrtrecon/internal/logger"
	"github.com/qrt-closure/qrtrecon/internal/model"
)

func newClassifyCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <file>...",
		Short: "Assign source documents to ledger categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runClassify(newClassifier(cfg), args)
		},
	}
	return cmd
}

// classifyFile reads a document's headers and classifies it. Header read
// failures degrade to filename-only classification.
func classifyFile(c *classify.Classifier, registry *extract.Registry, path string) classify.Result {
	var headers []string
	if rd := registry.ForFile(path); rd != nil {
		sheets, err := rd.Read(path)
		if err != nil {
			logger.L.Warn("classifying by filename only", "file", path, "error", err)
		} else {
			headers = extract.Headers(sheets)
		}
	}
	return c.Classify(filepath.Base(path), headers)
}

func runClassify(c *classify.Classifier, files []string) error {
	registry := extract.DefaultRegistry()
	unknown := 0

	for _, path := range files {
		res := classifyFile(c, registry, path)
		if res.Category == model.CategoryUnknown {
			unknown++
			fmt.Printf("%s: unknown (scores: %s), resolve manually\n", path, formatScores(res.Scores))
			continue
		}
		fmt.Printf("%s: %s (scores: %s)\n", path, res.Category, formatScores(res.Scores))
	}

	if unknown > 0 {
		fmt.Printf("%d of %d documents need manual classification\n", unknown, len(files))
	}
	return nil
}

func formatScores(scores map[model.Category]int) string {
	out := ""
	for _, cat := range model.Categories() {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", cat, scores[cat])
	}
	return out
}

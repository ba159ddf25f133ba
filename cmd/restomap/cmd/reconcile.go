package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/restomap/internal/cmd/output"
	"github.com/agentstation/restomap/internal/sources"
	"github.com/agentstation/restomap/pkg/constants"
	"github.com/agentstation/restomap/pkg/errors"
	"github.com/agentstation/restomap/pkg/logging"
	"github.com/agentstation/restomap/pkg/reconcile"
	"github.com/agentstation/restomap/pkg/summary"
	"github.com/agentstation/restomap/pkg/tabular"
)

// reconcileResult is the structured payload for json/yaml output.
type reconcileResult struct {
	Summary  summary.Summary               `json:"summary" yaml:"summary"`
	Records  []reconcile.CategorizedRecord `json:"records" yaml:"records"`
	Stats    map[string]tabular.CleanStats `json:"stats" yaml:"stats"`
	Warnings []string                      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewReconcileCommand creates the reconcile command with app dependencies.
func NewReconcileCommand(app AppContext) *cobra.Command {
	var (
		matchedPath string
		esbPath     string
		jakartaPath string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Classify listings as matched, ESB-only, or Jakarta-only",
		Long: `Reconcile loads the pre-matched, ESB, and Jakarta CSV files, harmonizes
their column schemas, drops rows with invalid coordinates, and classifies
every remaining listing by identity-key comparison against the matched set.

A missing required column degrades that dataset's contribution to empty
and is reported as a warning; the other datasets are still processed.`,
		Example: `  restomap reconcile --matched matched.csv --esb esb.csv --jakarta jakarta.csv
  restomap reconcile --matched matched.csv --esb esb.csv --jakarta jakarta.csv --out-dir ./out`,
		RunE: func(c *cobra.Command, _ []string) error {
			matched, esb, jakarta, err := sources.LoadAll(matchedPath, esbPath, jakartaPath)
			if err != nil {
				return err
			}

			pipeline, err := app.Pipeline()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(c.Context(), app.Logger())
			result := pipeline.Run(ctx, matched, esb, jakarta)
			for _, err := range result.Errors {
				app.Logger().Warn().Err(err).Msg("dataset degraded")
			}

			if outDir != "" {
				if err := writeOutputs(outDir, result.Partition); err != nil {
					return err
				}
				app.Logger().Info().Str("dir", outDir).Msg("wrote categorized datasets")
			}

			payload := reconcileResult{
				Summary:  summary.Summarize(result.Partition, app.TopN()),
				Records:  result.Partition.Records(),
				Stats:    result.Metadata.Stats,
				Warnings: result.Warnings,
			}
			return render(app, payload, func() output.Data {
				return output.RecordsToTableData(payload.Records)
			})
		},
	}

	cmd.Flags().StringVar(&matchedPath, "matched", "", "path to the pre-matched CSV file")
	cmd.Flags().StringVar(&esbPath, "esb", "", "path to the ESB listing CSV file")
	cmd.Flags().StringVar(&jakartaPath, "jakarta", "", "path to the Jakarta listing CSV file")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory to write categorized CSV files")
	_ = cmd.MarkFlagRequired("matched")
	_ = cmd.MarkFlagRequired("esb")
	_ = cmd.MarkFlagRequired("jakarta")

	return cmd
}

// writeOutputs writes the three categorized datasets as CSV files.
func writeOutputs(dir string, p reconcile.Partition) error {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.NewIOError("create", dir, err)
	}

	files := map[string][]reconcile.CategorizedRecord{
		"matched.csv":      p.Matched,
		"esb_only.csv":     p.ESBOnly,
		"jakarta_only.csv": p.JakartaOnly,
	}
	for name, records := range files {
		if err := writeCSV(filepath.Join(dir, name), reconcile.ToDataset(records)); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, d tabular.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIOError("create", path, err)
	}
	defer f.Close()

	if err := tabular.WriteCSV(f, d); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

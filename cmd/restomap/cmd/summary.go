package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/restomap/internal/cmd/output"
	"github.com/agentstation/restomap/internal/sources"
	"github.com/agentstation/restomap/pkg/logging"
	"github.com/agentstation/restomap/pkg/summary"
)

// NewSummaryCommand creates the summary command with app dependencies.
func NewSummaryCommand(app AppContext) *cobra.Command {
	var (
		matchedPath string
		esbPath     string
		jakartaPath string
		topN        int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Report per-category counts, percentages, and top identities",
		Long: `Summary runs the full reconciliation and reports aggregate statistics:
record counts per category, each category's share of the grand total,
and the most frequent identity keys across all categories.`,
		Example: `  restomap summary --matched matched.csv --esb esb.csv --jakarta jakarta.csv
  restomap summary --matched matched.csv --esb esb.csv --jakarta jakarta.csv --top 5`,
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

			if topN < 1 {
				topN = app.TopN()
			}
			s := summary.Summarize(result.Partition, topN)

			if err := render(app, s, func() output.Data {
				return output.SummaryToTableData(s)
			}); err != nil {
				return err
			}

			// The ranking gets its own table; json/yaml already carry it.
			format := output.DetectFormat(app.OutputFormat())
			if format != output.FormatJSON && format != output.FormatYAML && len(s.TopIdentities) > 0 {
				formatter := output.NewFormatter(format)
				return formatter.Format(os.Stdout, output.RankingToTableData(s.TopIdentities))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&matchedPath, "matched", "", "path to the pre-matched CSV file")
	cmd.Flags().StringVar(&esbPath, "esb", "", "path to the ESB listing CSV file")
	cmd.Flags().StringVar(&jakartaPath, "jakarta", "", "path to the Jakarta listing CSV file")
	cmd.Flags().IntVar(&topN, "top", 0, "identity ranking size (default from config)")
	_ = cmd.MarkFlagRequired("matched")
	_ = cmd.MarkFlagRequired("esb")
	_ = cmd.MarkFlagRequired("jakarta")

	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/restomap/internal/cmd/output"
	"github.com/agentstation/restomap/internal/sources"
	"github.com/agentstation/restomap/pkg/geo"
	"github.com/agentstation/restomap/pkg/tabular"
)

// validateResult is the structured payload for json/yaml output.
type validateResult struct {
	File    string     `json:"file" yaml:"file"`
	Before  int        `json:"before" yaml:"before"`
	After   int        `json:"after" yaml:"after"`
	Dropped int        `json:"dropped" yaml:"dropped"`
	Bounds  geo.Bounds `json:"bounds" yaml:"bounds"`
}

// NewValidateCommand creates the validate command with app dependencies.
func NewValidateCommand(app AppContext) *cobra.Command {
	var (
		file     string
		latField string
		lonField string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a CSV file's coordinates against the region bounds",
		Long: `Validate loads a single CSV file and reports how many rows carry
coordinates inside the configured region bounds. Rows with missing,
non-numeric, or out-of-range coordinates count as dropped.`,
		Example: `  restomap validate --file jakarta.csv
  restomap validate --file esb.csv --lat-field lat --lon-field lon`,
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := sources.Load(file)
			if err != nil {
				return err
			}

			bounds := app.Bounds()
			_, stats := tabular.CleanCoordinates(d, latField, lonField, geo.NewValidator(bounds))

			app.Logger().Info().
				Str("file", file).
				Int("before", stats.Before).
				Int("after", stats.After).
				Int("dropped", stats.Dropped()).
				Msg("validated coordinates")

			payload := validateResult{
				File:    file,
				Before:  stats.Before,
				After:   stats.After,
				Dropped: stats.Dropped(),
				Bounds:  bounds,
			}
			return render(app, payload, func() output.Data {
				return output.StatsToTableData(map[string]tabular.CleanStats{file: stats})
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the CSV file to validate")
	cmd.Flags().StringVar(&latField, "lat-field", "latitude", "latitude column name")
	cmd.Flags().StringVar(&lonField, "lon-field", "longitude", "longitude column name")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

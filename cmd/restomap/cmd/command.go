// Package cmd contains the restomap subcommands. Commands depend on the
// AppContext interface rather than the concrete app type so they can be
// tested with lightweight fakes.
package cmd

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/restomap/internal/cmd/output"
	"github.com/agentstation/restomap/pkg/geo"
	"github.com/agentstation/restomap/pkg/reconcile"
)

// AppContext defines the interface that commands need from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	Pipeline() (*reconcile.Pipeline, error)
	Bounds() geo.Bounds
	OutputFormat() string
	TopN() int
}

// render formats data according to the app's output format, auto-detecting
// table-vs-JSON when no explicit format is set. Table output uses the
// tableData converter; structured formats marshal the raw value.
func render(app AppContext, raw any, tableData func() output.Data) error {
	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return formatter.Format(os.Stdout, raw)
	default:
		return formatter.Format(os.Stdout, tableData())
	}
}

package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// DefaultInputPath is the export the chart was authored against
const DefaultInputPath = "timeseries_refs_heads_user_mkuehtreiber_530_20250929_QM_authors_2025-07-01_to_2025-09-30.csv"

// Input holds the time series source configuration
type Input struct {
	Path string
}

// Flags returns CLI flags for Input configuration
func (i *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path of the cumulative time series CSV",
			Category:    "Input",
			Value:       DefaultInputPath,
			Sources:     cli.EnvVars("CODECHURN_INPUT"),
			Destination: &i.Path,
		},
	}
}

// LogValue returns structured log value
func (i Input) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", i.Path),
	)
}

package config

import (
	"log/slog"

	"github.com/secmon-lab/codechurn/pkg/service/viewer"
	"github.com/urfave/cli/v3"
)

// Viewer holds configuration of the local chart page
type Viewer struct {
	Addr string
	Open bool
}

// Flags returns CLI flags for Viewer configuration
func (v *Viewer) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address of the chart page (port 0 picks a free port)",
			Category:    "Viewer",
			Value:       "localhost:0",
			Sources:     cli.EnvVars("CODECHURN_ADDR"),
			Destination: &v.Addr,
		},
		&cli.BoolFlag{
			Name:        "open",
			Usage:       "Open the chart page in the default browser",
			Category:    "Viewer",
			Value:       true,
			Sources:     cli.EnvVars("CODECHURN_OPEN"),
			Destination: &v.Open,
		},
	}
}

// Configure creates the viewer window
func (v *Viewer) Configure(title string) *viewer.Window {
	return viewer.New(
		viewer.WithAddr(v.Addr),
		viewer.WithBrowser(v.Open),
		viewer.WithTitle(title),
	)
}

// LogValue returns structured log value
func (v Viewer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", v.Addr),
		slog.Bool("open", v.Open),
	)
}

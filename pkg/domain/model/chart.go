package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// ChartProfile is the fixed presentation of the cumulative change chart
type ChartProfile struct {
	Title  string      `yaml:"title"`
	XLabel string      `yaml:"x_label"`
	YLabel string      `yaml:"y_label"`
	Canvas Canvas      `yaml:"canvas"`
	Fonts  Fonts       `yaml:"fonts"`
	Series SeriesNames `yaml:"series"`
	Line   LineStyle   `yaml:"line"`
	Grid   GridStyle   `yaml:"grid"`
}

// Canvas is the output size in pixels
type Canvas struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPI    float64 `yaml:"dpi"`
}

// Fonts holds font sizes in points
type Fonts struct {
	Title  float64 `yaml:"title"`
	Label  float64 `yaml:"label"`
	Tick   float64 `yaml:"tick"`
	Legend float64 `yaml:"legend"`
}

// SeriesNames are the legend labels of the three series
type SeriesNames struct {
	Added   string `yaml:"added"`
	Deleted string `yaml:"deleted"`
	Net     string `yaml:"net"`
}

// LineStyle describes the series strokes
type LineStyle struct {
	Width   float64   `yaml:"width"`
	NetDash []float64 `yaml:"net_dash"`
	Colors  []string  `yaml:"colors"`
}

// GridStyle describes the grid overlay
type GridStyle struct {
	Dash  []float64 `yaml:"dash"`
	Color string    `yaml:"color"`
	Alpha float64   `yaml:"alpha"`
	Width float64   `yaml:"width"`
}

// Validate validates the chart profile
func (p *ChartProfile) Validate() error {
	if p.Title == "" {
		return goerr.New("chart title is required")
	}
	if p.Canvas.Width <= 0 || p.Canvas.Height <= 0 {
		return goerr.New("canvas size must be positive",
			goerr.V("width", p.Canvas.Width),
			goerr.V("height", p.Canvas.Height))
	}
	if p.Series.Added == "" || p.Series.Deleted == "" || p.Series.Net == "" {
		return goerr.New("all series labels are required",
			goerr.V("series", p.Series))
	}
	if p.Line.Width <= 0 {
		return goerr.New("line width must be positive", goerr.V("width", p.Line.Width))
	}
	if len(p.Line.NetDash) == 0 {
		return goerr.New("net series must be dashed")
	}
	if len(p.Line.Colors) != 3 {
		return goerr.New("exactly three series colors are required",
			goerr.V("colors", p.Line.Colors))
	}
	if p.Grid.Alpha < 0 || p.Grid.Alpha > 1 {
		return goerr.New("grid alpha must be between 0 and 1", goerr.V("alpha", p.Grid.Alpha))
	}
	return nil
}

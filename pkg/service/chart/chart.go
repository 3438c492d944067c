package chart

import (
	"context"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codechurn/pkg/domain/model"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// axisMargin is the fraction of the data span added on each side of an axis
const axisMargin = 0.05

// emptyAnchor positions the x axis when there is no data to derive it from
var emptyAnchor = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Renderer draws a dataset as a cumulative line chart
type Renderer struct {
	profile *model.ChartProfile
}

// New creates a renderer for the given profile
func New(profile *model.ChartProfile) *Renderer {
	return &Renderer{profile: profile}
}

// Render encodes the chart of ds as PNG into w
func (r *Renderer) Render(ctx context.Context, ds *model.Dataset, w io.Writer) error {
	c := r.Build(ds)

	ctxlog.From(ctx).Debug("Rendering chart",
		"rows", ds.Len(),
		"width", c.Width,
		"height", c.Height,
	)

	if err := c.Render(gochart.PNG, w); err != nil {
		return goerr.Wrap(err, "failed to render chart",
			goerr.T(model.ErrTagRender),
			goerr.V("rows", ds.Len()))
	}
	return nil
}

// Build assembles the chart for ds without drawing it
func (r *Renderer) Build(ds *model.Dataset) gochart.Chart {
	p := r.profile
	dates := ds.Dates()
	added, deleted, net := ds.CumAdded(), ds.CumDeleted(), ds.CumNet()

	lineStyle := func(index int) gochart.Style {
		return gochart.Style{
			StrokeColor: drawing.ColorFromHex(p.Line.Colors[index]),
			StrokeWidth: p.Line.Width,
		}
	}
	netStyle := lineStyle(2)
	netStyle.StrokeDashArray = p.Line.NetDash

	grid := gochart.Style{
		StrokeColor:     drawing.ColorFromHex(p.Grid.Color).WithAlpha(uint8(math.Round(p.Grid.Alpha * 255))),
		StrokeWidth:     p.Grid.Width,
		StrokeDashArray: p.Grid.Dash,
	}
	tickStyle := gochart.Style{FontSize: p.Fonts.Tick}
	nameStyle := gochart.Style{FontSize: p.Fonts.Label}

	c := gochart.Chart{
		Title:      p.Title,
		TitleStyle: gochart.Style{FontSize: p.Fonts.Title},
		Width:      p.Canvas.Width,
		Height:     p.Canvas.Height,
		DPI:        p.Canvas.DPI,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 60, Left: 20, Right: 40, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           p.XLabel,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			ValueFormatter: dateFormatter,
			Range:          timeRange(dates),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: gochart.YAxis{
			Name:           p.YLabel,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			ValueFormatter: countFormatter,
			Range:          valueRange(added, deleted, net),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: []gochart.Series{
			gochart.TimeSeries{Name: p.Series.Added, XValues: dates, YValues: added, Style: lineStyle(0)},
			gochart.TimeSeries{Name: p.Series.Deleted, XValues: dates, YValues: deleted, Style: lineStyle(1)},
			gochart.TimeSeries{Name: p.Series.Net, XValues: dates, YValues: net, Style: netStyle},
		},
	}
	c.Elements = []gochart.Renderable{gochart.Legend(&c, gochart.Style{FontSize: p.Fonts.Legend})}

	return c
}

// timeRange spans all dates plus a margin. A single date or no date at all
// gets a one day window so the axis never collapses.
func timeRange(dates []time.Time) *gochart.ContinuousRange {
	if len(dates) == 0 {
		return padRange(gochart.TimeToFloat64(emptyAnchor), gochart.TimeToFloat64(emptyAnchor.AddDate(0, 0, 1)))
	}

	minT, maxT := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(minT) {
			minT = d
		}
		if d.After(maxT) {
			maxT = d
		}
	}
	if !maxT.After(minT) {
		minT = minT.Add(-12 * time.Hour)
		maxT = maxT.Add(12 * time.Hour)
	}
	return padRange(gochart.TimeToFloat64(minT), gochart.TimeToFloat64(maxT))
}

// valueRange spans every value of every column plus a margin
func valueRange(columns ...[]float64) *gochart.ContinuousRange {
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, col := range columns {
		for _, v := range col {
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
	}

	switch {
	case math.IsInf(minV, 1):
		minV, maxV = 0, 1
	case minV == maxV:
		minV, maxV = minV-1, maxV+1
	}
	return padRange(minV, maxV)
}

func padRange(minV, maxV float64) *gochart.ContinuousRange {
	margin := (maxV - minV) * axisMargin
	return &gochart.ContinuousRange{Min: minV - margin, Max: maxV + margin}
}

func dateFormatter(v interface{}) string {
	switch typed := v.(type) {
	case time.Time:
		return typed.UTC().Format(time.DateOnly)
	case float64:
		return gochart.TimeFromFloat64(typed).UTC().Format(time.DateOnly)
	}
	return ""
}

func countFormatter(v interface{}) string {
	if typed, ok := v.(float64); ok {
		rounded := math.Round(typed)
		if rounded == 0 {
			rounded = 0 // drop negative zero
		}
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return ""
}

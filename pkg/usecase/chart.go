package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codechurn/pkg/domain/interfaces"
	"github.com/secmon-lab/codechurn/pkg/domain/model"
)

// ChartRenderer loads a time series, draws it and hands the image to a viewer
type ChartRenderer struct {
	loader   interfaces.TimeSeriesLoader
	renderer interfaces.ChartRenderer
	viewer   interfaces.Viewer
}

// NewChartRenderer creates a new ChartRenderer instance
func NewChartRenderer(loader interfaces.TimeSeriesLoader, renderer interfaces.ChartRenderer, viewer interfaces.Viewer) *ChartRenderer {
	return &ChartRenderer{
		loader:   loader,
		renderer: renderer,
		viewer:   viewer,
	}
}

// Run executes load, render and display in order. A failing stage stops the run.
func (uc *ChartRenderer) Run(ctx context.Context, path string) error {
	logger := ctxlog.From(ctx)

	ds, err := uc.loader.Load(ctx, path)
	if err != nil {
		return goerr.Wrap(err, "failed to load time series", goerr.V("path", path))
	}
	logger.Info("Time series loaded", slog.Any("dataset", datasetSummary(ds)))

	var buf bytes.Buffer
	if err := uc.renderer.Render(ctx, ds, &buf); err != nil {
		return goerr.Wrap(err, "failed to render chart", goerr.V("path", path))
	}
	logger.Debug("Chart rendered", "bytes", buf.Len())

	if err := uc.viewer.Show(ctx, buf.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to display chart")
	}

	return nil
}

func datasetSummary(ds *model.Dataset) slog.Value {
	attrs := []slog.Attr{
		slog.String("source", ds.Source),
		slog.Int("rows", ds.Len()),
	}
	if first, last, ok := ds.Span(); ok {
		final := ds.Rows[ds.Len()-1]
		attrs = append(attrs,
			slog.String("from", first.Format(time.DateOnly)),
			slog.String("to", last.Format(time.DateOnly)),
			slog.Float64("cum_added", final.CumAdded),
			slog.Float64("cum_deleted", final.CumDeleted),
			slog.Float64("cum_net", final.CumNet),
		)
	}
	return slog.GroupValue(attrs...)
}

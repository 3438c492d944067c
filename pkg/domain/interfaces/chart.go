package interfaces

//go:generate moq -out mocks/chart_mock.go -pkg mocks . TimeSeriesLoader ChartRenderer Viewer

import (
	"context"
	"io"

	"github.com/secmon-lab/codechurn/pkg/domain/model"
)

// TimeSeriesLoader reads a cumulative change time series
type TimeSeriesLoader interface {
	Load(ctx context.Context, path string) (*model.Dataset, error)
}

// ChartRenderer draws a dataset as an image
type ChartRenderer interface {
	Render(ctx context.Context, ds *model.Dataset, w io.Writer) error
}

// Viewer displays a rendered chart and blocks until it is dismissed
type Viewer interface {
	Show(ctx context.Context, png []byte) error
}

package usecase_test

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codechurn/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/codechurn/pkg/domain/model"
	"github.com/secmon-lab/codechurn/pkg/repository"
	"github.com/secmon-lab/codechurn/pkg/service/chart"
	"github.com/secmon-lab/codechurn/pkg/usecase"
)

func writeTimeSeries(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timeseries.csv")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func newRenderer(t *testing.T) *chart.Renderer {
	t.Helper()
	profile, err := chart.DefaultProfile()
	gt.NoError(t, err).Required()
	return chart.New(profile)
}

func recordingViewer() *mocks.ViewerMock {
	return &mocks.ViewerMock{
		ShowFunc: func(ctx context.Context, png []byte) error {
			return nil
		},
	}
}

func TestChartRenderer_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and displays a well-formed file", func(t *testing.T) {
		path := writeTimeSeries(t, `Date,CumAdded,CumDeleted,CumNet
2025-07-01,100,20,80
2025-07-08,180,60,120
2025-07-15,240,150,90
`)
		viewer := recordingViewer()
		uc := usecase.NewChartRenderer(repository.NewCSV(), newRenderer(t), viewer)

		gt.NoError(t, uc.Run(ctx, path)).Required()

		calls := viewer.ShowCalls()
		gt.Equal(t, len(calls), 1)
		img, err := png.Decode(bytes.NewReader(calls[0].Png))
		gt.NoError(t, err).Required()
		gt.Equal(t, img.Bounds().Dx(), 1200)
		gt.Equal(t, img.Bounds().Dy(), 600)
	})

	t.Run("any row count renders", func(t *testing.T) {
		inputs := map[string]string{
			"no rows":  "Date,CumAdded,CumDeleted,CumNet\n",
			"one row":  "Date,CumAdded,CumDeleted,CumNet\n2025-07-01,5,1,4\n",
			"flat":     "Date,CumAdded,CumDeleted,CumNet\n2025-07-01,0,0,0\n2025-07-02,0,0,0\n",
			"same day": "Date,CumAdded,CumDeleted,CumNet\n2025-07-01,1,0,1\n2025-07-01,2,0,2\n",
		}
		for name, content := range inputs {
			t.Run(name, func(t *testing.T) {
				viewer := recordingViewer()
				uc := usecase.NewChartRenderer(repository.NewCSV(), newRenderer(t), viewer)

				gt.NoError(t, uc.Run(ctx, writeTimeSeries(t, content)))
				gt.Equal(t, len(viewer.ShowCalls()), 1)
			})
		}
	})

	t.Run("missing numeric column never reaches the viewer", func(t *testing.T) {
		path := writeTimeSeries(t, "Date,CumAdded,CumNet\n2025-07-01,5,4\n")
		viewer := recordingViewer()
		renderer := &mocks.ChartRendererMock{
			RenderFunc: func(ctx context.Context, ds *model.Dataset, w io.Writer) error {
				return nil
			},
		}
		uc := usecase.NewChartRenderer(repository.NewCSV(), renderer, viewer)

		err := uc.Run(ctx, path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to load time series")
		gt.Equal(t, len(renderer.RenderCalls()), 0)
		gt.Equal(t, len(viewer.ShowCalls()), 0)
	})

	t.Run("non-existent file fails at load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.csv")
		viewer := recordingViewer()
		renderer := &mocks.ChartRendererMock{
			RenderFunc: func(ctx context.Context, ds *model.Dataset, w io.Writer) error {
				return nil
			},
		}
		uc := usecase.NewChartRenderer(repository.NewCSV(), renderer, viewer)

		err := uc.Run(ctx, path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to load time series")
		gt.V(t, goerr.Values(err)["path"]).Equal(path)
		gt.Equal(t, len(renderer.RenderCalls()), 0)
		gt.Equal(t, len(viewer.ShowCalls()), 0)
	})

	t.Run("render failure skips the viewer", func(t *testing.T) {
		loader := &mocks.TimeSeriesLoaderMock{
			LoadFunc: func(ctx context.Context, path string) (*model.Dataset, error) {
				return &model.Dataset{Source: path}, nil
			},
		}
		renderer := &mocks.ChartRendererMock{
			RenderFunc: func(ctx context.Context, ds *model.Dataset, w io.Writer) error {
				return goerr.New("canvas exploded")
			},
		}
		viewer := recordingViewer()
		uc := usecase.NewChartRenderer(loader, renderer, viewer)

		err := uc.Run(ctx, "in-memory")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to render chart")
		gt.Equal(t, len(viewer.ShowCalls()), 0)
	})

	t.Run("viewer failure is returned", func(t *testing.T) {
		path := writeTimeSeries(t, "Date,CumAdded,CumDeleted,CumNet\n2025-07-01,5,1,4\n")
		viewer := &mocks.ViewerMock{
			ShowFunc: func(ctx context.Context, png []byte) error {
				return goerr.New("display unavailable")
			},
		}
		uc := usecase.NewChartRenderer(repository.NewCSV(), newRenderer(t), viewer)

		err := uc.Run(ctx, path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to display chart")
	})

	t.Run("repeated runs produce the same image", func(t *testing.T) {
		path := writeTimeSeries(t, `Date,CumAdded,CumDeleted,CumNet
2025-07-01,10,2,8
2025-07-02,30,12,18
`)
		viewer := recordingViewer()
		uc := usecase.NewChartRenderer(repository.NewCSV(), newRenderer(t), viewer)

		gt.NoError(t, uc.Run(ctx, path)).Required()
		gt.NoError(t, uc.Run(ctx, path)).Required()

		calls := viewer.ShowCalls()
		gt.Equal(t, len(calls), 2)
		gt.True(t, bytes.Equal(calls[0].Png, calls[1].Png))
	})
}

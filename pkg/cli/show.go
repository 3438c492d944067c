package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/codechurn/pkg/cli/config"
	"github.com/secmon-lab/codechurn/pkg/repository"
	"github.com/secmon-lab/codechurn/pkg/service/chart"
	"github.com/secmon-lab/codechurn/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdShow() *cli.Command {
	var (
		inputCfg  config.Input
		viewerCfg config.Viewer
	)

	return &cli.Command{
		Name:  "show",
		Usage: "Render the cumulative change chart and show it in the browser",
		Flags: joinFlags(
			inputCfg.Flags(),
			viewerCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Debug("Starting codechurn",
				slog.Any("input", inputCfg),
				slog.Any("viewer", viewerCfg),
			)

			profile, err := chart.DefaultProfile()
			if err != nil {
				return err
			}

			uc := usecase.NewChartRenderer(
				repository.NewCSV(),
				chart.New(profile),
				viewerCfg.Configure(profile.Title),
			)
			return uc.Run(ctx, inputCfg.Path)
		},
	}
}

package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs err together with the context values collected by goerr
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{slog.String("error", err.Error())}
	if values := goerr.Values(err); len(values) > 0 {
		attrs = append(attrs, slog.Any("values", values))
	}

	ctxlog.From(ctx).Error("application error", attrs...)
}

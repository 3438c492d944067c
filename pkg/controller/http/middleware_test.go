package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/codechurn/pkg/controller/http"
)

func TestNoCache(t *testing.T) {
	handler := controller.NoCache(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	gt.Equal(t, w.Code, http.StatusTeapot)
	gt.Equal(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.With(context.Background(), logger)

	var handlerLogger *slog.Logger
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerLogger = ctxlog.From(r.Context())
		_, _ = w.Write([]byte("ok"))
	})
	handler := middleware.RequestID(controller.LoggingMiddleware(ctx)(inner))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chart.png", nil))

	gt.True(t, handlerLogger == logger)
	out := buf.String()
	gt.S(t, out).Contains(`"msg":"HTTP request"`)
	gt.S(t, out).Contains(`"path":"/chart.png"`)
	gt.S(t, out).Contains(`"status":200`)
	gt.S(t, out).Contains(`"bytes":2`)
	gt.S(t, out).Contains(`"request_id"`)
}

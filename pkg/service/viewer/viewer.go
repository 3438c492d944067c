package viewer

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pkg/browser"
	controller "github.com/secmon-lab/codechurn/pkg/controller/http"
	"github.com/secmon-lab/codechurn/pkg/domain/interfaces"
	"github.com/secmon-lab/codechurn/pkg/domain/model"
	"github.com/secmon-lab/codechurn/pkg/utils/async"
)

const shutdownTimeout = 10 * time.Second

// Window shows a chart in the browser and blocks until it is dismissed
type Window struct {
	addr    string
	title   string
	open    bool
	openURL func(url string) error
	onReady func(url string)
}

var _ interfaces.Viewer = (*Window)(nil)

// Option configures a Window
type Option func(*Window)

// WithAddr sets the listen address. Port 0 picks a free port.
func WithAddr(addr string) Option {
	return func(w *Window) {
		w.addr = addr
	}
}

// WithTitle sets the page title
func WithTitle(title string) Option {
	return func(w *Window) {
		w.title = title
	}
}

// WithBrowser enables or disables opening the page in the default browser
func WithBrowser(open bool) Option {
	return func(w *Window) {
		w.open = open
	}
}

// WithOpener replaces the function used to open the page
func WithOpener(fn func(url string) error) Option {
	return func(w *Window) {
		w.openURL = fn
	}
}

// WithReadyHook registers fn to receive the page URL once the server listens
func WithReadyHook(fn func(url string)) Option {
	return func(w *Window) {
		w.onReady = fn
	}
}

// New creates a new Window
func New(opts ...Option) *Window {
	w := &Window{
		addr:    "localhost:0",
		title:   "Chart",
		open:    true,
		openURL: browser.OpenURL,
		onReady: func(string) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Show serves png until the page is closed, a termination signal arrives or
// ctx is cancelled
func (w *Window) Show(ctx context.Context, png []byte) error {
	logger := ctxlog.From(ctx)

	ln, err := net.Listen("tcp", w.addr)
	if err != nil {
		return goerr.Wrap(err, "failed to listen for viewer",
			goerr.V("addr", w.addr),
			goerr.T(model.ErrTagViewer))
	}

	closed := make(chan struct{})
	server := controller.NewServer(ctx, ln.Addr().String(), png,
		controller.WithTitle(w.title),
		controller.WithCloseHandler(func() { close(closed) }),
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	url := "http://" + ln.Addr().String() + "/"
	logger.Info("Chart viewer ready, close the page or press Ctrl+C to exit", slog.String("url", url))
	w.onReady(url)

	if w.open {
		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := w.openURL(url); err != nil {
				return goerr.Wrap(err, "failed to open browser", goerr.V("url", url))
			}
			return nil
		})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var result error
	select {
	case <-closed:
		logger.Debug("Viewer page closed")
	case sig := <-sigChan:
		logger.Info("Signal received, closing viewer", slog.Any("signal", sig))
	case <-ctx.Done():
		logger.Info("Context cancelled, closing viewer")
	case err := <-serveErr:
		result = goerr.Wrap(err, "viewer server failed", goerr.T(model.ErrTagViewer))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil && result == nil {
		result = goerr.Wrap(err, "failed to shutdown viewer gracefully", goerr.T(model.ErrTagViewer))
	}

	return result
}

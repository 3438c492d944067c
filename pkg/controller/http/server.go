package http

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// Server serves a rendered chart to the browser
type Server struct {
	*http.Server
	router  chi.Router
	title   string
	png     []byte
	onClose func()
	once    sync.Once
}

// Option configures a Server
type Option func(*Server)

// WithTitle sets the page title
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// WithCloseHandler registers fn to run once when the page asks the viewer to close
func WithCloseHandler(fn func()) Option {
	return func(s *Server) {
		s.onClose = fn
	}
}

// NewServer creates a new HTTP server for the chart image
func NewServer(ctx context.Context, addr string, png []byte, opts ...Option) *Server {
	router := chi.NewRouter()

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		title:   "Chart",
		png:     png,
		onClose: func() {},
	}
	for _, opt := range opts {
		opt(server)
	}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(NoCache)

	router.Get("/health", handleHealth)
	router.Get("/", server.handleIndex)
	router.Get("/chart.png", server.handleChart)
	router.Post("/close", server.handleClose)

	return server
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            display: flex;
            flex-direction: column;
            align-items: center;
            margin: 0;
            padding: 1rem;
            background: #f5f5f5;
        }
        img {
            max-width: 100%;
            background: white;
            box-shadow: 0 1px 4px rgba(0, 0, 0, 0.2);
        }
        button {
            margin-top: 1rem;
            padding: 0.5rem 1.5rem;
            font-size: 1rem;
        }
    </style>
</head>
<body>
    <img src="/chart.png" alt="{{.}}">
    <button id="close">Close</button>
    <script>
        document.getElementById("close").addEventListener("click", function () {
            fetch("/close", { method: "POST" }).finally(function () { window.close(); });
        });
    </script>
</body>
</html>`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := indexTemplate.Execute(w, s.title); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render index page", "error", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(s.png); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write chart image", "error", err)
	}
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	ctxlog.From(r.Context()).Info("Viewer closed from browser")
	s.once.Do(s.onClose)
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "codechurn",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

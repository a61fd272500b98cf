// Package server serves the landing site over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"impractical.co/landing"
	"impractical.co/landing/internal/site"
)

const (
	tracerName = "impractical.co/landing/internal/server"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server routes requests to the landing site's pages and static assets.
type Server struct {
	site   *site.Site
	logger *slog.Logger
	mux    *http.ServeMux
}

// New returns a Server rendering pages from s and serving files from
// static, which holds the img and css directories. Pages and files are
// served under the path of the site's base URL; /healthz always answers at
// the root. A nil logger discards everything.
func New(s *site.Site, static fs.FS, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{
		site:   s,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	pages := http.NewServeMux()
	files := http.FileServerFS(static)
	pages.HandleFunc("GET /{$}", srv.handleHome)
	pages.Handle("GET /img/", files)
	pages.Handle("GET /css/", files)
	pages.HandleFunc("/", srv.handleNotFound)

	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)
	if prefix := s.BaseURL.Path(); prefix != "/" {
		srv.mux.Handle(prefix, http.StripPrefix(strings.TrimSuffix(prefix, "/"), pages))
		srv.mux.HandleFunc("/", srv.handleNotFound)
	} else {
		srv.mux.Handle("/", pages)
	}
	return srv
}

// ServeHTTP wraps every request in a span, attaches the Server's logger to
// the request context, and logs the outcome.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "landing.http "+r.Method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(r.Method),
			semconv.URLPath(r.URL.Path),
		),
	)
	defer span.End()
	ctx = landing.LoggingContext(ctx, srv.logger)

	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	srv.mux.ServeHTTP(rec, r.WithContext(ctx))

	span.SetAttributes(semconv.HTTPResponseStatusCode(rec.status))
	if rec.status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(rec.status))
	}
	srv.logger.InfoContext(ctx, "handled request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

func (srv *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	home, err := srv.site.Home(ctx)
	if err != nil {
		landing.Logger(ctx).ErrorContext(ctx, "error building home page", "error", err)
		srv.serverError(w, r)
		return
	}
	// render fully before writing so a failure can still change the status
	var buf bytes.Buffer
	if err := landing.Execute(ctx, &buf, srv.site, home); err != nil {
		landing.Logger(ctx).ErrorContext(ctx, "error rendering home page", "error", err)
		srv.serverError(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		landing.Logger(ctx).ErrorContext(ctx, "error writing home page", "error", err)
	}
}

func (srv *Server) serverError(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	landing.Render(ctx, w, srv.site, srv.site.ServerErrorPage(ctx))
}

func (srv *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := w.Write([]byte("ok"))
	if err != nil {
		landing.Logger(r.Context()).ErrorContext(r.Context(), "error writing health check", "error", err)
	}
}

func (srv *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("landing.not_found", true))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	landing.Render(ctx, w, srv.site, srv.site.NotFound(ctx))
}

// Run listens on addr and serves until ctx is done, then shuts down,
// giving in-flight requests a bounded time to finish.
func (srv *Server) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return srv.Serve(ctx, listener)
}

// Serve is Run with a listener that's already open.
func (srv *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	serveErr := make(chan error, 1)
	srv.logger.InfoContext(ctx, "serving landing site", "addr", listener.Addr().String())
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// newAPI wires a store into an api. Metrics are collected only when
// withMetrics is set.
func newAPI(addr string, store bookStore, log logrus.FieldLogger, withMetrics bool) *api {
	a := &api{
		addr:   addr,
		store:  store,
		log:    log,
		tracer: otel.Tracer(tracerName),
	}
	if withMetrics {
		a.metrics = newMetrics(store)
	}
	return a
}

func route(api *api) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", api.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/book", api.getBooksHandler).Methods(http.MethodGet)
	r.HandleFunc("/book", api.createBookHandler).Methods(http.MethodPost)
	r.HandleFunc("/book/{id:[0-9]+}", api.getBookByIdHandler).Methods(http.MethodGet)
	r.HandleFunc("/book/{id:[0-9]+}", api.updateBookByIdHandler).Methods(http.MethodPatch)
	r.HandleFunc("/book/{id:[0-9]+}", api.deleteBookByIdHandler).Methods(http.MethodDelete)
	r.NotFoundHandler = http.HandlerFunc(routeNotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	if api.metrics != nil {
		r.Handle("/metrics", api.metrics.handler()).Methods(http.MethodGet)
		r.Use(api.metrics.middleware)
	}

	var h http.Handler = r

	h = recoverMiddleware(api.log)(h)
	h = loggingMiddleware(api.log)(h)
	h = traceContextMiddleware(h)
	h = requestIDMiddleware(h)

	return h
}

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "bookshelf: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := initTracing(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	api := newAPI(cfg.Addr, NewStore(), log, cfg.MetricsEnabled)

	srv := &http.Server{
		Addr:              api.addr,
		Handler:           route(api),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    api.addr,
			"metrics": cfg.MetricsEnabled,
			"tracing": cfg.TracingEnabled,
		}).Info("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

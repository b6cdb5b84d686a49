// middleware.go contains middleware for request ID, logging, recovery for all functions.
package main

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const requestIDKey ctxKey = "request_id"

// GetRequestID safely extracts the request ID from context.
// Returns empty string if missing.
func GetRequestID(ctx context.Context) string {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		r = r.WithContext(ctx)

		w.Header().Set("X-Request-ID", rid)

		next.ServeHTTP(w, r)
	})
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs the request and response.
func loggingMiddleware(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sr := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK, // default if handler never calls WriteHeader
			}

			next.ServeHTTP(sr, r)

			log.WithFields(logrus.Fields{
				"request_id": GetRequestID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     sr.status,
				"duration":   time.Since(start).String(),
			}).Info("request handled")
		})
	}
}

// recoverMiddleware turns a panic in any handler into a 500 envelope.
// Store locks are released by deferred unlocks, so the store stays usable.
func recoverMiddleware(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(logrus.Fields{
						"request_id": GetRequestID(r.Context()),
						"panic":      rec,
						"stack":      string(debug.Stack()),
					}).Error("panic recovered")

					// If headers/body already started, we can't reliably send a new response.
					writeEnvelope(w, envelope{
						Message: printerFor(r).Sprintf(msgInternalError),
						Status:  http.StatusInternalServerError,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// traceContextMiddleware continues a trace started by the caller, if the
// request carries W3C trace headers.
func traceContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"document-parser/internal/domain"
	apperrors "document-parser/pkg/errors"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Middleware carries the cross-cutting request handling shared by all routes
type Middleware struct {
	logger         domain.Logger
	requestTimeout time.Duration
}

// NewMiddleware creates the middleware set. A zero requestTimeout disables
// the per-request deadline.
func NewMiddleware(logger domain.Logger, requestTimeout time.Duration) *Middleware {
	return &Middleware{
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// RequestID tags the request with the caller's X-Request-ID or a new UUID
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLog records method, path, status and latency of every request
func (m *Middleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		requestID, _ := GetRequestIDFromContext(r)
		m.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
	})
}

// Timeout bounds the request context. Work that outlives it fails through
// the normal error paths.
func (m *Middleware) Timeout(next http.Handler) http.Handler {
	if m.requestTimeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), m.requestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recover is the catch-all: a panic becomes a 500 JSON error. If the handler
// already started its response the panic is only logged.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			requestID, _ := GetRequestIDFromContext(r)
			m.logger.Error("Recovered from panic", err,
				"path", r.URL.Path,
				"request_id", requestID,
				"response_started", rw.wroteHeader,
				"stack", string(debug.Stack()),
			)
			if rw.wroteHeader {
				return
			}

			message := apperrors.UnexpectedErrorMessage
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				message = appErr.Message
			} else if ok && err.Error() != "" {
				message = err.Error()
			}
			writeError(w, http.StatusInternalServerError, message)
		}()
		next.ServeHTTP(rw, r)
	})
}

// statusRecorder remembers the status code written by the wrapped handler
// and whether the response has started.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

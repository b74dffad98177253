package middleware

import (
	"bufio"
	"net"
	"net/http"
	"time"

	"notekeeper/internal/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const TraceIDHeader = "X-Trace-ID"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.written {
		return
	}
	rw.statusCode = code
	rw.written = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// Hijack lets the websocket upgrader take over the connection.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// TraceIDMiddleware attaches a child logger carrying trace_id to the request
// context. An incoming X-Trace-ID is reused, otherwise a new one is minted.
func TraceIDMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	}
}

func LoggerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			start := time.Now()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			log.Info().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("remote_addr", r.RemoteAddr).
				Int("status", rw.statusCode).
				Int("size", rw.size).
				Dur("duration", time.Since(start)).
				Send()
		})
	}
}

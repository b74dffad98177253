package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notekeeper/internal/logger"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDMiddleware_GeneratesID(t *testing.T) {
	var seen string
	h := TraceIDMiddleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(TraceIDHeader)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes/", nil))

	assert.NotEmpty(t, rec.Header().Get(TraceIDHeader))
	assert.Equal(t, rec.Header().Get(TraceIDHeader), seen)
}

func TestTraceIDMiddleware_ReusesIncomingID(t *testing.T) {
	h := TraceIDMiddleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/notes/", nil)
	req.Header.Set(TraceIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(TraceIDHeader))
}

func TestLoggerMiddleware_LogsRequestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := &logger.Logger{Logger: zerolog.New(&buf)}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	})
	h := TraceIDMiddleware(base)(LoggerMiddleware()(inner))

	req := httptest.NewRequest(http.MethodPost, "/notes/create", nil)
	req.Header.Set(TraceIDHeader, "trace-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/notes/create", entry["uri"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 2, entry["size"])
}

func TestCORSMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name         string
		origins      string
		method       string
		origin       string
		wantStatus   int
		wantAllowOrg string
	}{
		{"wildcard echoes origin", "*", http.MethodGet, "http://localhost:3000", http.StatusTeapot, "http://localhost:3000"},
		{"wildcard without origin", "*", http.MethodGet, "", http.StatusTeapot, "*"},
		{"listed origin", "http://a.test, http://b.test", http.MethodGet, "http://b.test", http.StatusTeapot, "http://b.test"},
		{"unlisted origin", "http://a.test", http.MethodGet, "http://evil.test", http.StatusTeapot, ""},
		{"preflight short-circuits", "*", http.MethodOptions, "http://localhost:3000", http.StatusOK, "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CORSMiddleware(tt.origins, "GET,POST,PATCH,DELETE,OPTIONS", "Content-Type")(inner)

			req := httptest.NewRequest(tt.method, "/notes/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowOrg, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET,POST,PATCH,DELETE,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := NewMetrics("notekeeper_test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/notes/note/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/notes/note/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/notes/note/{id}", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "notekeeper_test_http_requests_total"))
}

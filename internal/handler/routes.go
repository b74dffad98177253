package handler

import (
	"net/http"

	"notekeeper/internal/config"
	"notekeeper/internal/logger"
	"notekeeper/internal/middleware"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Notes     *NoteHandler
	WebSocket *WebSocketHandler
	Metrics   *middleware.Metrics
}

// NewRouter wires every route behind the trace-id, logging, metrics and CORS
// middleware. WebSocket and Metrics may be nil.
func NewRouter(h Handlers, cors config.CORSConfig, log *logger.Logger) *mux.Router {
	r := mux.NewRouter().StrictSlash(true)

	r.Use(middleware.TraceIDMiddleware(log))
	r.Use(middleware.LoggerMiddleware())
	if h.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(h.Metrics))
	}
	r.Use(middleware.CORSMiddleware(
		cors.AllowedOrigins,
		cors.AllowedMethods,
		cors.AllowedHeaders,
	))

	notes := r.PathPrefix("/notes").Subrouter()
	notes.HandleFunc("/", h.Notes.List).Methods(http.MethodGet, http.MethodOptions)
	notes.HandleFunc("/note/{id}", h.Notes.Get).Methods(http.MethodGet, http.MethodOptions)
	notes.HandleFunc("/create", h.Notes.Create).Methods(http.MethodPost, http.MethodOptions)
	notes.HandleFunc("/update/{id}", h.Notes.Update).Methods(http.MethodPatch, http.MethodOptions)
	notes.HandleFunc("/delete/{id}", h.Notes.Delete).Methods(http.MethodDelete, http.MethodOptions)

	if h.WebSocket != nil {
		r.HandleFunc("/ws", h.WebSocket.HandleConnection).Methods(http.MethodGet)
	}
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", Health).Methods(http.MethodGet)
	r.HandleFunc("/", Root).Methods(http.MethodGet)

	return r
}

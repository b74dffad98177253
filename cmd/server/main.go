package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notekeeper/internal/config"
	"notekeeper/internal/handler"
	"notekeeper/internal/logger"
	"notekeeper/internal/middleware"
	"notekeeper/internal/repository"
	"notekeeper/internal/service"
	"notekeeper/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("server", "info").Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.NewLogger("server", cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := repository.Connect(ctx, cfg.Database.ConnectionURL(), cfg.Database.Name)
	if err != nil {
		log.Fatal().Err(err).Str("couchdb", cfg.Database.RedactedURL()).Msg("failed to connect to CouchDB")
	}
	defer client.Close()
	log.Info().Str("couchdb", cfg.Database.RedactedURL()).Str("db", cfg.Database.Name).Msg("connected to CouchDB")

	wsManager := websocket.NewManager(
		cfg.WebSocket.MaxClients,
		cfg.WebSocket.WriteWait,
		cfg.WebSocket.PongWait,
		cfg.WebSocket.PingPeriod,
		log.GetChildLogger(),
	)
	go wsManager.Run(ctx)

	noteRepo := repository.NewNoteRepository(client, cfg.Database.Name)
	noteService := service.NewNoteService(noteRepo, wsManager)

	router := handler.NewRouter(handler.Handlers{
		Notes:     handler.NewNoteHandler(noteService),
		WebSocket: handler.NewWebSocketHandler(wsManager),
		Metrics:   middleware.NewMetrics("notekeeper"),
	}, cfg.CORS, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Server.Env).Msg("starting notekeeper server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped gracefully")
}

package app

import (
	"context"

	"github.com/gridfall/progression/internal/http"
	"github.com/gridfall/progression/internal/http/handlers"
	"github.com/gridfall/progression/internal/http/middleware"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"github.com/gridfall/progression/internal/transport"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	progressionHandler *handlers.ProgressionHandler,
	transportHandler *transport.Handler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(progressionHandler, transportHandler, errorHandler, log, port)
}

// StartHTTPServer starts serving once the fx application is up
func (a *application) StartHTTPServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

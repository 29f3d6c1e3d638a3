// Package httpapi exposes the gateway operations over HTTP for the dashboard
// frontend. All form parsing and response encoding lives here; the gateway
// itself stays transport-agnostic.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/verifeed/verifeed/internal/logging"
	"github.com/verifeed/verifeed/internal/server/services"
)

type Server struct {
	address string
	gateway *services.Gateway
	log     logging.Logger
}

func NewServer(address string, gw *services.Gateway, log logging.Logger) *Server {
	return &Server{
		address: address,
		gateway: gw,
		log:     log.With("module", "httpapi"),
	}
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Pre(middleware.RemoveTrailingSlash())

	s.setRoutes(e)

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	s.log.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setRoutes(e *echo.Echo) {
	e.GET("/", s.handleRoot)
	e.POST("/register", s.handleRegister)
	e.POST("/login", s.handleLogin)
	e.GET("/posts", s.handleFeed)
	e.POST("/posts", s.handleCreatePost)
	e.GET("/user/image-stats/:user_id", s.handleStats)
}

package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/RJYJJL/LIVE/internal/config"
	apperrors "github.com/RJYJJL/LIVE/internal/errors"
	"github.com/RJYJJL/LIVE/internal/store"
	"github.com/RJYJJL/LIVE/internal/websocket"
)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	store     *store.Store
	hub       *websocket.Hub
	startTime time.Time
}

func NewServer(cfg *config.Config, st *store.Store, hub *websocket.Hub) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		store:     st,
		hub:       hub,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

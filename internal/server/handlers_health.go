package server

import (
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	// Everything lives in memory, so readiness is only about the hub actor
	// still answering.
	sessions := s.hub.SessionCount()
	if sessions < 0 {
		return c.JSON(503, map[string]any{"status": "unhealthy", "failed_check": "hub"})
	}
	return c.JSON(200, map[string]any{
		"status":   "ready",
		"sessions": sessions,
	})
}

func (s *Server) handleRoot(c echo.Context) error {
	return okResult(c, map[string]string{
		"message": "live debate API backend",
		"api":     "/api/*",
		"ws":      "/ws",
	})
}

package server

import (
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/RJYJJL/LIVE/internal/domain"
)

func (s *Server) handleGetDebateFlow(c echo.Context) error {
	streamID := c.QueryParam("stream_id")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID == "" {
		return okResult(c, map[string]any{"segments": []domain.FlowSegment{}})
	}

	return okResult(c, map[string]any{
		"stream_id": streamID,
		"segments":  s.store.DebateFlow(streamID),
	})
}

func (s *Server) handleSaveDebateFlow(c echo.Context) error {
	var body struct {
		StreamID string               `json:"stream_id"`
		Segments []domain.FlowSegment `json:"segments"`
	}
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil || json.Unmarshal(raw, &body) != nil {
		return failResult(c, "stream_id and segments are required")
	}
	if body.StreamID == "" || body.Segments == nil {
		return failResult(c, "stream_id and segments are required")
	}

	s.store.SetDebateFlow(body.StreamID, body.Segments)
	return okResult(c, map[string]any{"stream_id": body.StreamID, "saved": true})
}

func (s *Server) handleDebateFlowControl(c echo.Context) error {
	body := bindBody(c)
	return okResult(c, map[string]any{
		"stream_id": getStr(body, "stream_id"),
		"action":    getStr(body, "action"),
		"message":   "command received",
	})
}

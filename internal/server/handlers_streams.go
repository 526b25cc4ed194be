package server

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RJYJJL/LIVE/internal/domain"
	apperrors "github.com/RJYJJL/LIVE/internal/errors"
)

func (s *Server) handleListStreams(c echo.Context) error {
	return okResult(c, s.store.Streams())
}

func (s *Server) handleAddStream(c echo.Context) error {
	body := bindBody(c)

	id := getStr(body, "id")
	if id == "" {
		id = fmt.Sprintf("stream-%d", time.Now().UnixMilli())
	}
	name := getStr(body, "name")
	if name == "" {
		name = "New stream"
	}
	// The admin form submits the ingest address as "url".
	pushURL := getStr(body, "pushUrl")
	if pushURL == "" {
		pushURL = getStr(body, "url")
	}

	st := s.store.AddStream(domain.Stream{
		ID:      id,
		Name:    name,
		Enabled: getBool(body, "enabled", true),
		PushURL: pushURL,
		PlayURL: getStr(body, "playUrl"),
	})
	return okResult(c, st)
}

func (s *Server) handleUpdateStream(c echo.Context) error {
	streamID := c.Param("streamId")

	var upd domain.StreamUpdate
	if err := c.Bind(&upd); err != nil {
		return apperrors.ValidationError("invalid stream update body").WithField("stream_id", streamID)
	}

	st, ok := s.store.UpdateStream(streamID, upd)
	if !ok {
		return failResult(c, "stream not found")
	}
	return okResult(c, st)
}

func (s *Server) handleDeleteStream(c echo.Context) error {
	streamID := c.Param("streamId")
	s.store.DeleteStream(streamID)
	return okResult(c, map[string]any{"streamId": streamID, "deleted": true})
}

func (s *Server) handleToggleStream(c echo.Context) error {
	st, ok := s.store.ToggleStream(c.Param("streamId"))
	if !ok {
		return failResult(c, "stream not found")
	}
	return okResult(c, st)
}

func (s *Server) handleGetStreamDebate(c echo.Context) error {
	d, ok := s.store.StreamDebate(c.Param("streamId"))
	if !ok {
		return okResult(c, nil)
	}
	return okResult(c, d)
}

func (s *Server) handleSetStreamDebate(c echo.Context) error {
	streamID := c.Param("streamId")
	body := bindBody(c)

	debateID := getStr(body, "debate_id")
	if debateID != "" {
		s.store.AssociateStreamDebate(streamID, debateID)
	}
	return okResult(c, map[string]any{"streamId": streamID, "debateId": debateID})
}

func (s *Server) handleRemoveStreamDebate(c echo.Context) error {
	streamID := c.Param("streamId")
	s.store.RemoveStreamDebate(streamID)
	return okResult(c, map[string]any{"streamId": streamID, "removed": true})
}

package server

import (
	"github.com/labstack/echo/v4"

	"github.com/RJYJJL/LIVE/internal/domain"
)

func (s *Server) handleStartAI(c echo.Context) error {
	body := bindBody(c)

	streamID := getStr(body, "streamId")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID != "" {
		s.store.SetAIStatus(streamID, domain.AIStatusRunning)
	}

	data := map[string]any{"status": domain.AIStatusRunning, "streamId": streamID}
	s.hub.Broadcast(domain.EventAIStatus, data)
	return okResult(c, data)
}

func (s *Server) handleStopAI(c echo.Context) error {
	body := bindBody(c)

	// Without a stream id the stop applies to every stream.
	streamID := getStr(body, "streamId")
	if streamID != "" {
		s.store.SetAIStatus(streamID, domain.AIStatusStopped)
	} else {
		for _, st := range s.store.Streams() {
			s.store.SetAIStatus(st.ID, domain.AIStatusStopped)
		}
	}

	data := map[string]any{"status": domain.AIStatusStopped, "streamId": streamID}
	s.hub.Broadcast(domain.EventAIStatus, data)
	return okResult(c, data)
}

func (s *Server) handleToggleAI(c echo.Context) error {
	body := bindBody(c)

	action := getStr(body, "action")
	status := domain.AIStatusRunning
	if action == "pause" {
		status = domain.AIStatusPaused
	}
	for _, st := range s.store.Streams() {
		s.store.SetAIStatus(st.ID, status)
	}

	data := map[string]any{"status": status, "action": action}
	s.hub.Broadcast(domain.EventAIStatus, data)
	return okResult(c, data)
}

func (s *Server) handleListAIContent(c echo.Context) error {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)
	streamID := c.QueryParam("stream_id")

	return okResult(c, map[string]any{
		"list":     s.store.AIContents(page, pageSize, streamID),
		"total":    s.store.AIContentTotal(streamID),
		"page":     page,
		"pageSize": pageSize,
	})
}

func (s *Server) handleCreateAIContent(c echo.Context) error {
	body := bindBody(c)

	text := getStr(body, "contentText")
	if text == "" {
		return failResult(c, "contentText is required")
	}
	streamID := getStr(body, "streamId")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID == "" {
		return failResult(c, "streamId is required")
	}

	content := s.store.AddAIContent(domain.AIContent{StreamID: streamID, Text: text})
	s.hub.Broadcast(domain.EventNewAIContent, content)
	return okResult(c, content)
}

func (s *Server) handleAIContentComments(c echo.Context) error {
	contentID := c.Param("contentId")
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)

	comments := s.store.AIContentComments(contentID, page, pageSize)

	total := 0
	text := ""
	if content, ok := s.store.AIContent(contentID); ok {
		total = len(content.Comments)
		text = content.Text
	}

	return okResult(c, map[string]any{
		"contentId":   contentID,
		"contentText": text,
		"comments":    comments,
		"total":       total,
		"page":        page,
		"pageSize":    pageSize,
	})
}

func (s *Server) handleDeleteAIComment(c echo.Context) error {
	// Comment deletion is acknowledged but not applied; comments only exist
	// on seeded demo content.
	return okResult(c, map[string]any{
		"contentId": c.Param("contentId"),
		"commentId": c.Param("commentId"),
		"deleted":   true,
	})
}

func (s *Server) handleDeleteAIContent(c echo.Context) error {
	contentID := c.Param("contentId")
	s.store.DeleteAIContent(contentID)
	return okResult(c, map[string]any{"contentId": contentID, "deleted": true})
}

package server

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RJYJJL/LIVE/internal/domain"
)

func (s *Server) handleListDebates(c echo.Context) error {
	return okResult(c, s.store.Debates())
}

func (s *Server) handleGetDebate(c echo.Context) error {
	d, ok := s.store.Debate(c.Param("debateId"))
	if !ok {
		return failResult(c, "debate not found")
	}
	return okResult(c, d)
}

func (s *Server) handleCreateDebate(c echo.Context) error {
	body := bindBody(c)

	id := getStr(body, "id")
	if id == "" {
		id = fmt.Sprintf("debate-%d", time.Now().UnixMilli())
	}

	d := s.store.CreateDebate(domain.Debate{
		ID:            id,
		Title:         getStr(body, "title"),
		Description:   getStr(body, "description"),
		LeftPosition:  getStr(body, "leftPosition"),
		RightPosition: getStr(body, "rightPosition"),
		Active:        getBool(body, "active", true),
	})

	s.hub.Broadcast(domain.EventDebateUpdated, map[string]any{"debateId": id, "debate": d})
	return okResult(c, d)
}

func (s *Server) handleUpdateDebate(c echo.Context) error {
	debateID := c.Param("debateId")

	existing, ok := s.store.Debate(debateID)
	if !ok {
		return failResult(c, "debate not found")
	}

	body := bindBody(c)
	d := existing
	if _, set := body["title"]; set {
		d.Title = getStr(body, "title")
	}
	if _, set := body["description"]; set {
		d.Description = getStr(body, "description")
	}
	if _, set := body["leftPosition"]; set {
		d.LeftPosition = getStr(body, "leftPosition")
	}
	if _, set := body["rightPosition"]; set {
		d.RightPosition = getStr(body, "rightPosition")
	}
	if _, set := body["isActive"]; set {
		d.Active = getBool(body, "isActive", existing.Active)
	}

	d = s.store.UpdateDebate(debateID, d)
	s.hub.Broadcast(domain.EventDebateUpdated, map[string]any{"debateId": debateID, "debate": d})
	return okResult(c, d)
}

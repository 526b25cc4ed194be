package server

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) handleDashboard(c echo.Context) error {
	streamID := c.QueryParam("stream_id")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID == "" {
		return failResult(c, "specify stream_id or add a stream first")
	}

	v := s.store.Votes(streamID)
	data := map[string]any{
		"streamId":   streamID,
		"isLive":     s.store.IsLive(streamID),
		"aiStatus":   s.store.AIStatus(streamID),
		"leftVotes":  v.LeftVotes,
		"rightVotes": v.RightVotes,
		"viewers":    s.store.Viewers(streamID),
	}

	if d, ok := s.store.StreamDebate(streamID); ok {
		data["debateTopic"] = d.Title
		data["leftPosition"] = d.LeftPosition
		data["rightPosition"] = d.RightPosition
	}

	return okResult(c, data)
}

func (s *Server) handleListUsers(c echo.Context) error {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)

	return okResult(c, map[string]any{
		"list":     s.store.Users(page, pageSize),
		"total":    s.store.UsersTotal(),
		"page":     page,
		"pageSize": pageSize,
	})
}

func (s *Server) handleVoteStatistics(c echo.Context) error {
	timeRange := c.QueryParam("timeRange")
	if timeRange == "" {
		timeRange = "1h"
	}

	totalLeft, totalRight := 0, 0
	for _, st := range s.store.Streams() {
		v := s.store.Votes(st.ID)
		totalLeft += v.LeftVotes
		totalRight += v.RightVotes
	}

	return okResult(c, map[string]any{
		"timeRange":       timeRange,
		"totalLeftVotes":  totalLeft,
		"totalRightVotes": totalRight,
		"totalVotes":      totalLeft + totalRight,
		"dailyStats":      []any{},
	})
}

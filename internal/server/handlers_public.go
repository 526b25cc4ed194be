package server

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RJYJJL/LIVE/internal/domain"
	"github.com/RJYJJL/LIVE/internal/metrics"
)

func (s *Server) handleUserVote(c echo.Context) error {
	body := bindBody(c)

	// Some clients nest the vote under a "request" key.
	request := body
	if nested := getMap(body, "request"); nested != nil {
		request = nested
	}

	left := getInt(request, "leftVotes", 0)
	right := getInt(request, "rightVotes", 0)

	streamID := getStr(request, "streamId")
	if streamID == "" {
		streamID = getStr(request, "stream_id")
	}
	if streamID == "" {
		streamID = s.defaultStreamID()
	}

	if streamID != "" {
		s.store.SetVotes(streamID, left, right)
		metrics.VoteUpdatesTotal.WithLabelValues("viewer").Inc()
		s.broadcastVotes(map[string]any{"leftVotes": left, "rightVotes": right, "streamId": streamID})
	}

	return okResult(c, map[string]any{"success": true, "leftVotes": left, "rightVotes": right})
}

func (s *Server) handleGetVotes(c echo.Context) error {
	streamID := c.QueryParam("stream_id")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID == "" {
		return okResult(c, map[string]any{"leftVotes": 0, "rightVotes": 0})
	}

	v := s.store.Votes(streamID)
	return okResult(c, map[string]any{
		"leftVotes":  v.LeftVotes,
		"rightVotes": v.RightVotes,
		"streamId":   streamID,
	})
}

func (s *Server) handleDebateTopic(c echo.Context) error {
	streamID := c.QueryParam("stream_id")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID == "" {
		return okResult(c, nil)
	}

	d, ok := s.store.StreamDebate(streamID)
	if !ok {
		return okResult(c, nil)
	}
	return okResult(c, d)
}

func (s *Server) handlePublicAIContent(c echo.Context) error {
	list := s.store.AIContents(1, 50, c.QueryParam("stream_id"))
	return okResult(c, map[string]any{"list": list, "total": len(list)})
}

func (s *Server) handleVoteStatisticsFiltered(c echo.Context) error {
	streamID := c.QueryParam("stream_id")

	totalLeft, totalRight := 0, 0
	for _, st := range s.store.Streams() {
		if streamID != "" && streamID != st.ID {
			continue
		}
		v := s.store.Votes(st.ID)
		totalLeft += v.LeftVotes
		totalRight += v.RightVotes
	}

	return okResult(c, map[string]any{
		"totalLeftVotes":  totalLeft,
		"totalRightVotes": totalRight,
		"totalVotes":      totalLeft + totalRight,
	})
}

func (s *Server) handleListAPIUsers(c echo.Context) error {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)

	return okResult(c, map[string]any{
		"list":     s.store.Users(page, pageSize),
		"total":    s.store.UsersTotal(),
		"page":     page,
		"pageSize": pageSize,
	})
}

func (s *Server) handleCreateAPIUser(c echo.Context) error {
	body := bindBody(c)

	now := time.Now().UTC().Format(time.RFC3339Nano)
	u := domain.User{
		ID:        fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Nickname:  getStr(body, "nickName"),
		AvatarURL: getStr(body, "avatarUrl"),
		CreatedAt: now,
		UpdatedAt: now,
		Status:    "active",
	}
	if u.Nickname == "" {
		u.Nickname = "Viewer"
	}
	u = s.store.AddUser(u)

	return okResult(c, map[string]any{"user": u, "message": "user record created"})
}

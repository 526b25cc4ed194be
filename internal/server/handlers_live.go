package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RJYJJL/LIVE/internal/domain"
	"github.com/RJYJJL/LIVE/internal/metrics"
)

func (s *Server) handleStartLive(c echo.Context) error {
	return s.setLiveStatus(c, true, "live started")
}

func (s *Server) handleStopLive(c echo.Context) error {
	return s.setLiveStatus(c, false, "live stopped")
}

func (s *Server) setLiveStatus(c echo.Context, live bool, message string) error {
	body := bindBody(c)
	streamID := getStr(body, "streamId")
	if streamID == "" {
		return failResult(c, "streamId is required")
	}

	s.store.SetLive(streamID, live)
	if live {
		metrics.LiveTransitionsTotal.WithLabelValues("start").Inc()
	} else {
		metrics.LiveTransitionsTotal.WithLabelValues("stop").Inc()
	}

	s.hub.Broadcast(domain.EventLiveStatus, map[string]any{"streamId": streamID, "isLive": live})

	return okResult(c, map[string]any{"streamId": streamID, "isLive": live, "message": message})
}

func (s *Server) handleUpdateVotes(c echo.Context) error {
	body := bindBody(c)

	action := getStr(body, "action")
	left := getInt(body, "leftVotes", 0)
	right := getInt(body, "rightVotes", 0)

	streamID := getStr(body, "streamId")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID == "" {
		return failResult(c, "streamId is required")
	}

	// "add" applies a delta on top of the current tally, "reset" zeroes it;
	// everything else is a wholesale set. The store itself has no increment
	// primitive.
	switch action {
	case "add":
		current := s.store.Votes(streamID)
		left += current.LeftVotes
		right += current.RightVotes
	case "reset":
		left, right = 0, 0
	}
	s.store.SetVotes(streamID, left, right)
	metrics.VoteUpdatesTotal.WithLabelValues("admin").Inc()

	data := map[string]any{"leftVotes": left, "rightVotes": right, "streamId": streamID}
	s.broadcastVotes(data)
	return okResult(c, data)
}

func (s *Server) handleResetVotes(c echo.Context) error {
	body := bindBody(c)

	left, right := 0, 0
	if resetTo := getMap(body, "resetTo"); resetTo != nil {
		left = getInt(resetTo, "leftVotes", 0)
		right = getInt(resetTo, "rightVotes", 0)
	}

	streamID := getStr(body, "streamId")
	if streamID == "" {
		streamID = s.defaultStreamID()
	}
	if streamID == "" {
		return failResult(c, "streamId is required")
	}

	s.store.SetVotes(streamID, left, right)
	metrics.VoteUpdatesTotal.WithLabelValues("admin").Inc()

	data := map[string]any{"leftVotes": left, "rightVotes": right, "streamId": streamID}
	s.broadcastVotes(data)
	return okResult(c, data)
}

// broadcastVotes emits the tally under both event names. Subscribers listen
// for either, so both aliases are always sent.
func (s *Server) broadcastVotes(data map[string]any) {
	s.hub.Broadcast(domain.EventVotesUpdated, data)
	s.hub.Broadcast(domain.EventVotesUpdateAlias, data)
}

func (s *Server) handleGetViewers(c echo.Context) error {
	if streamID := c.QueryParam("stream_id"); streamID != "" {
		return okResult(c, map[string]any{
			"streamId":  streamID,
			"viewers":   s.store.Viewers(streamID),
			"timestamp": time.Now().UnixMilli(),
		})
	}
	return okResult(c, map[string]any{
		"streams":   s.store.AllViewers(),
		"timestamp": time.Now().UnixMilli(),
	})
}

func (s *Server) handleBroadcastViewers(c echo.Context) error {
	body := bindBody(c)
	streamID := getStr(body, "streamId")
	if streamID == "" {
		return failResult(c, "streamId is required")
	}
	return okResult(c, map[string]any{
		"streamId": streamID,
		"viewers":  s.store.Viewers(streamID),
		"message":  "broadcast sent",
	})
}

package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartLive(t *testing.T) {
	s := newTestServer(t, true)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/start", map[string]any{"streamId": "stream-1"})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, true, data["isLive"])
	assert.Equal(t, "stream-1", data["streamId"])
	assert.True(t, s.store.IsLive("stream-1"))
}

func TestStopLive(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetLive("stream-1", true)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/stop", map[string]any{"streamId": "stream-1"})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	assert.Equal(t, false, dataMap(t, resp)["isLive"])
	assert.False(t, s.store.IsLive("stream-1"))
}

func TestStartLive_MissingStreamID(t *testing.T) {
	s := newTestServer(t, true)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/start", map[string]any{})
	resp := decodeResponse(t, rec)
	requireFailure(t, resp, "streamId is required")
}

func TestStartLive_UnknownStreamStillSucceeds(t *testing.T) {
	s := newTestServer(t, true)

	// The live flag map accepts any id; no existence check is done.
	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/start", map[string]any{"streamId": "ghost"})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)
	assert.True(t, s.store.IsLive("ghost"))
}

func TestUpdateVotes_WholesaleSet(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 100, 100)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/update-votes", map[string]any{
		"streamId":   "stream-1",
		"leftVotes":  3,
		"rightVotes": 5,
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, float64(3), data["leftVotes"])
	assert.Equal(t, float64(5), data["rightVotes"])

	v := s.store.Votes("stream-1")
	assert.Equal(t, 3, v.LeftVotes)
	assert.Equal(t, 5, v.RightVotes)
}

func TestUpdateVotes_AddAction(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 10, 20)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/update-votes", map[string]any{
		"streamId":   "stream-1",
		"action":     "add",
		"leftVotes":  1,
		"rightVotes": 2,
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	v := s.store.Votes("stream-1")
	assert.Equal(t, 11, v.LeftVotes)
	assert.Equal(t, 22, v.RightVotes)
}

func TestUpdateVotes_ResetAction(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 10, 20)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/update-votes", map[string]any{
		"streamId":   "stream-1",
		"action":     "reset",
		"leftVotes":  99,
		"rightVotes": 99,
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	// "reset" zeroes the tally regardless of the values in the body.
	v := s.store.Votes("stream-1")
	assert.Equal(t, 0, v.LeftVotes)
	assert.Equal(t, 0, v.RightVotes)
}

func TestUpdateVotes_DefaultsToFirstStream(t *testing.T) {
	s := newTestServer(t, true)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/update-votes", map[string]any{
		"leftVotes":  7,
		"rightVotes": 9,
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)
	assert.Equal(t, "stream-1", dataMap(t, resp)["streamId"])
}

func TestUpdateVotes_NoStreamsAtAll(t *testing.T) {
	s := newTestServer(t, false)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/update-votes", map[string]any{
		"leftVotes": 1,
	})
	resp := decodeResponse(t, rec)
	requireFailure(t, resp, "streamId is required")
}

func TestResetVotes(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 50, 60)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/reset-votes", map[string]any{
		"streamId": "stream-1",
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	v := s.store.Votes("stream-1")
	assert.Equal(t, 0, v.LeftVotes)
	assert.Equal(t, 0, v.RightVotes)
}

func TestResetVotes_ResetToBaseline(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 50, 60)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/reset-votes", map[string]any{
		"streamId": "stream-1",
		"resetTo":  map[string]any{"leftVotes": 5, "rightVotes": 5},
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	v := s.store.Votes("stream-1")
	assert.Equal(t, 5, v.LeftVotes)
	assert.Equal(t, 5, v.RightVotes)
}

func TestGetViewers_SingleStream(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetViewers("stream-1", 42)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/admin/live/viewers?stream_id=stream-1", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, float64(42), data["viewers"])
	assert.Contains(t, data, "timestamp")
}

func TestGetViewers_AllStreams(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetViewers("stream-1", 42)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/admin/live/viewers", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	streams, ok := data["streams"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), streams["stream-1"])
}

func TestBroadcastViewers_ReturnsSnapshot(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetViewers("stream-1", 13)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/admin/live/broadcast-viewers", map[string]any{
		"streamId": "stream-1",
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)
	assert.Equal(t, float64(13), dataMap(t, resp)["viewers"])
}

package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserVote(t *testing.T) {
	s := newTestServer(t, true)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/user-vote", map[string]any{
		"streamId":   "stream-1",
		"leftVotes":  4,
		"rightVotes": 6,
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(4), data["leftVotes"])
	assert.Equal(t, float64(6), data["rightVotes"])

	v := s.store.Votes("stream-1")
	assert.Equal(t, 4, v.LeftVotes)
	assert.Equal(t, 6, v.RightVotes)
}

func TestUserVote_NestedRequestBody(t *testing.T) {
	s := newTestServer(t, true)

	// Some clients wrap the vote in a "request" object.
	rec := doJSON(t, s, http.MethodPost, "/api/v1/user-vote", map[string]any{
		"request": map[string]any{
			"stream_id":  "stream-1",
			"leftVotes":  8,
			"rightVotes": 2,
		},
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	v := s.store.Votes("stream-1")
	assert.Equal(t, 8, v.LeftVotes)
	assert.Equal(t, 2, v.RightVotes)
}

func TestUserVote_OverwritesNotAccumulates(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 100, 100)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/user-vote", map[string]any{
		"streamId":  "stream-1",
		"leftVotes": 1,
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	v := s.store.Votes("stream-1")
	assert.Equal(t, 1, v.LeftVotes)
	assert.Equal(t, 0, v.RightVotes)
}

func TestGetVotes(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 12, 34)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/votes?stream_id=stream-1", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, float64(12), data["leftVotes"])
	assert.Equal(t, float64(34), data["rightVotes"])
}

func TestGetVotes_NoStreamsAtAll(t *testing.T) {
	s := newTestServer(t, false)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/votes", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, float64(0), data["leftVotes"])
	assert.Equal(t, float64(0), data["rightVotes"])
}

func TestDebateTopic(t *testing.T) {
	s := newTestServer(t, true)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/debate-topic", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)
	assert.Equal(t, "debate-1", dataMap(t, resp)["id"])
}

func TestDebateTopic_NoAssociation(t *testing.T) {
	s := newTestServer(t, true)
	s.store.RemoveStreamDebate("stream-1")

	rec := doJSON(t, s, http.MethodGet, "/api/v1/debate-topic", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)
	assert.Nil(t, resp.Data)
}

func TestPublicAIContent(t *testing.T) {
	s := newTestServer(t, true)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/ai-content", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, float64(1), data["total"])
	list, ok := data["list"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestVoteStatisticsFiltered(t *testing.T) {
	s := newTestServer(t, true)
	s.store.SetVotes("stream-1", 3, 4)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/admin/votes/statistics?stream_id=stream-1", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, float64(3), data["totalLeftVotes"])
	assert.Equal(t, float64(4), data["totalRightVotes"])
	assert.Equal(t, float64(7), data["totalVotes"])
}

func TestListAPIUsers(t *testing.T) {
	s := newTestServer(t, true)

	rec := doJSON(t, s, http.MethodGet, "/api/users", nil)
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	assert.Equal(t, float64(1), data["total"])
}

func TestCreateAPIUser(t *testing.T) {
	s := newTestServer(t, false)

	rec := doJSON(t, s, http.MethodPost, "/api/users", map[string]any{
		"nickName":  "Alice",
		"avatarUrl": "https://example.com/a.png",
	})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	data := dataMap(t, resp)
	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", user["nickName"])
	assert.Equal(t, "active", user["status"])
	assert.Equal(t, 1, s.store.UsersTotal())
}

func TestCreateAPIUser_DefaultNickname(t *testing.T) {
	s := newTestServer(t, false)

	rec := doJSON(t, s, http.MethodPost, "/api/users", map[string]any{})
	resp := decodeResponse(t, rec)
	requireSuccess(t, resp)

	user := dataMap(t, resp)["user"].(map[string]any)
	assert.Equal(t, "Viewer", user["nickName"])
}

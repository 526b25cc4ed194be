package domain

import (
	"encoding/json"
	"strings"
)

// Stream is one live broadcast channel. PushURL is the ingest address
// (what the encoder publishes to), PlayURL the playback address.
type Stream struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	PushURL string `json:"pushUrl"`
	PlayURL string `json:"playUrl"`
}

// URL returns the address the admin frontend displays in stream lists.
func (s Stream) URL() string {
	if s.PushURL != "" {
		return s.PushURL
	}
	return s.PlayURL
}

// StreamType derives the protocol label from the ingest address.
func (s Stream) StreamType() string {
	if strings.Contains(s.PushURL, "rtmp") {
		return "rtmp"
	}
	return "hls"
}

// MarshalJSON adds the derived url and type fields the frontend expects.
func (s Stream) MarshalJSON() ([]byte, error) {
	type stream Stream
	return json.Marshal(struct {
		stream
		URL  string `json:"url"`
		Type string `json:"type"`
	}{
		stream: stream(s),
		URL:    s.URL(),
		Type:   s.StreamType(),
	})
}

// StreamUpdate is a partial update: nil fields are left untouched.
type StreamUpdate struct {
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
	PushURL *string `json:"pushUrl"`
	PlayURL *string `json:"playUrl"`
}

// VoteState is the per-stream vote tally. It is replaced wholesale on every
// write; callers wanting to add to the tally read first, then write.
type VoteState struct {
	LeftVotes  int `json:"leftVotes"`
	RightVotes int `json:"rightVotes"`
}

// AI pipeline states for a stream.
const (
	AIStatusStopped = "stopped"
	AIStatusRunning = "running"
	AIStatusPaused  = "paused"
)

package store

import "github.com/RJYJJL/LIVE/internal/domain"

// Seed loads the demo data set: one stream with an associated debate, the
// default seven-segment debate flow, a sample AI content item, and one demo
// viewer. Used at startup so a fresh process is immediately usable.
func Seed(s *Store) {
	const streamID = "stream-1"

	s.AddStream(domain.Stream{
		ID:      streamID,
		Name:    "Main stage",
		Enabled: true,
		PushURL: "rtmp://localhost/live/stream1",
	})

	const debateID = "debate-1"
	s.CreateDebate(domain.Debate{
		ID:            debateID,
		Title:         "If a button could erase all pain with one press, would you press it?",
		Description:   "A debate about suffering, growth, and what it means to choose",
		LeftPosition:  "Press it",
		RightPosition: "Leave it",
		Active:        true,
	})
	s.AssociateStreamDebate(streamID, debateID)

	s.SetDebateFlow(streamID, []domain.FlowSegment{
		{Name: "Affirmative opening", Duration: 180, Side: domain.SideLeft},
		{Name: "Negative cross-examination", Duration: 120, Side: domain.SideRight},
		{Name: "Negative opening", Duration: 180, Side: domain.SideRight},
		{Name: "Affirmative cross-examination", Duration: 120, Side: domain.SideLeft},
		{Name: "Open floor", Duration: 300, Side: domain.SideBoth},
		{Name: "Affirmative closing", Duration: 120, Side: domain.SideLeft},
		{Name: "Negative closing", Duration: 120, Side: domain.SideRight},
	})

	s.AddAIContent(domain.AIContent{
		StreamID: streamID,
		Text:     "Sample AI commentary generated from the stream",
		Comments: []domain.Comment{
			{ID: "comment-1", Text: "Strong point from the affirmative side"},
			{ID: "comment-2", Text: "The rebuttal missed the core question"},
		},
	})

	s.AddUser(domain.User{
		ID:        "user-demo-1",
		Nickname:  "Demo viewer",
		AvatarURL: "https://example.com/avatar/demo.png",
		CreatedAt: "2025-11-17T07:06:24.322Z",
		UpdatedAt: "2025-11-17T07:06:24.324Z",
		Status:    "active",
	})
}

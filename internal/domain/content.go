package domain

import "time"

// Comment is one viewer comment attached to an AI content item. Beyond the
// identifier and text the structure is opaque to the store.
type Comment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AIContent is one AI-generated commentary item for a stream. Items are kept
// newest-first; comments are embedded and cascade on delete.
type AIContent struct {
	ID        string    `json:"id"`
	StreamID  string    `json:"streamId"`
	Text      string    `json:"contentText"`
	CreatedAt time.Time `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

// User is a flat viewer record. There is no profile management beyond this.
type User struct {
	ID            string `json:"id"`
	Nickname      string `json:"nickName"`
	AvatarURL     string `json:"avatarUrl"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	TotalVotes    int    `json:"totalVotes"`
	JoinedDebates int    `json:"joinedDebates"`
	Status        string `json:"status"`
}

package domain

// Event kinds pushed over the realtime channel. Subscribers match on these
// strings, so they are part of the external contract.
//
// EventVotesUpdated and EventVotesUpdateAlias carry the same payload and are
// always sent together: existing subscribers listen for either name.
const (
	EventConnected        = "connected"
	EventLiveStatus       = "liveStatus"
	EventVotesUpdated     = "votes-updated"
	EventVotesUpdateAlias = "votesUpdate"
	EventAIStatus         = "aiStatus"
	EventDebateUpdated    = "debate-updated"
	EventNewAIContent     = "newAIContent"
)

// Broadcaster pushes one typed event to every connected realtime session,
// best-effort. A nil payload is delivered as an empty object. Delivery
// failures never surface to the caller.
type Broadcaster interface {
	Broadcast(kind string, data any)
}

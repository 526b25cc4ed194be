package store

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/RJYJJL/LIVE/internal/domain"
)

// Store is the single source of truth for all live state. Each sub-store has
// its own lock so unrelated operations never serialize on a global mutex.
//
// Compound operations that span sub-stores (the delete-stream cascade) take
// the locks one at a time: a concurrent reader may briefly observe the stream
// gone while a sub-entry remains. The state is in-memory only and best-effort,
// so this interleaving is accepted rather than paid for with a cross-map
// transaction.
type Store struct {
	clock clockwork.Clock

	streamsMu sync.RWMutex
	streams   map[string]domain.Stream

	liveMu sync.RWMutex
	live   map[string]bool

	votesMu sync.RWMutex
	votes   map[string]domain.VoteState

	aiStatusMu sync.RWMutex
	aiStatus   map[string]string

	viewersMu sync.RWMutex
	viewers   map[string]int

	debatesMu sync.RWMutex
	debates   map[string]domain.Debate

	streamDebateMu sync.RWMutex
	streamDebate   map[string]string

	contentsMu sync.RWMutex
	contents   []domain.AIContent
	contentSeq atomic.Int64

	flowsMu sync.RWMutex
	flows   map[string][]domain.FlowSegment

	usersMu sync.RWMutex
	users   []domain.User
}

// New creates an empty store. The clock stamps newly created AI content.
func New(clock clockwork.Clock) *Store {
	s := &Store{
		clock:        clock,
		streams:      make(map[string]domain.Stream),
		live:         make(map[string]bool),
		votes:        make(map[string]domain.VoteState),
		aiStatus:     make(map[string]string),
		viewers:      make(map[string]int),
		debates:      make(map[string]domain.Debate),
		streamDebate: make(map[string]string),
		flows:        make(map[string][]domain.FlowSegment),
	}
	s.contentSeq.Store(1)
	return s
}

// --- Streams ---

// Streams returns all streams ordered by identifier.
func (s *Store) Streams() []domain.Stream {
	s.streamsMu.RLock()
	list := make([]domain.Stream, 0, len(s.streams))
	for _, st := range s.streams {
		list = append(list, st)
	}
	s.streamsMu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (s *Store) Stream(id string) (domain.Stream, bool) {
	s.streamsMu.RLock()
	defer s.streamsMu.RUnlock()
	st, ok := s.streams[id]
	return st, ok
}

// AddStream inserts or overwrites a stream by identifier and seeds its
// per-stream sub-state with defaults. Seeding is idempotent: re-adding an
// existing identifier never resets sub-state that is already there.
func (s *Store) AddStream(st domain.Stream) domain.Stream {
	s.streamsMu.Lock()
	s.streams[st.ID] = st
	s.streamsMu.Unlock()

	s.liveMu.Lock()
	if _, ok := s.live[st.ID]; !ok {
		s.live[st.ID] = false
	}
	s.liveMu.Unlock()

	s.votesMu.Lock()
	if _, ok := s.votes[st.ID]; !ok {
		s.votes[st.ID] = domain.VoteState{}
	}
	s.votesMu.Unlock()

	s.aiStatusMu.Lock()
	if _, ok := s.aiStatus[st.ID]; !ok {
		s.aiStatus[st.ID] = domain.AIStatusStopped
	}
	s.aiStatusMu.Unlock()

	s.viewersMu.Lock()
	if _, ok := s.viewers[st.ID]; !ok {
		s.viewers[st.ID] = 0
	}
	s.viewersMu.Unlock()

	return st
}

// UpdateStream applies the non-nil fields of upd. Returns false when the
// stream does not exist; updates never create.
func (s *Store) UpdateStream(id string, upd domain.StreamUpdate) (domain.Stream, bool) {
	s.streamsMu.Lock()
	defer s.streamsMu.Unlock()

	st, ok := s.streams[id]
	if !ok {
		return domain.Stream{}, false
	}
	if upd.Name != nil {
		st.Name = *upd.Name
	}
	if upd.Enabled != nil {
		st.Enabled = *upd.Enabled
	}
	if upd.PushURL != nil {
		st.PushURL = *upd.PushURL
	}
	if upd.PlayURL != nil {
		st.PlayURL = *upd.PlayURL
	}
	s.streams[id] = st
	return st, true
}

// DeleteStream removes the stream and cascades over every per-stream
// sub-store. Unknown identifiers are a no-op.
func (s *Store) DeleteStream(id string) {
	s.streamsMu.Lock()
	delete(s.streams, id)
	s.streamsMu.Unlock()

	s.liveMu.Lock()
	delete(s.live, id)
	s.liveMu.Unlock()

	s.votesMu.Lock()
	delete(s.votes, id)
	s.votesMu.Unlock()

	s.aiStatusMu.Lock()
	delete(s.aiStatus, id)
	s.aiStatusMu.Unlock()

	s.streamDebateMu.Lock()
	delete(s.streamDebate, id)
	s.streamDebateMu.Unlock()

	s.flowsMu.Lock()
	delete(s.flows, id)
	s.flowsMu.Unlock()

	s.viewersMu.Lock()
	delete(s.viewers, id)
	s.viewersMu.Unlock()
}

// ToggleStream flips the enabled flag. Returns false for unknown identifiers.
func (s *Store) ToggleStream(id string) (domain.Stream, bool) {
	s.streamsMu.Lock()
	defer s.streamsMu.Unlock()

	st, ok := s.streams[id]
	if !ok {
		return domain.Stream{}, false
	}
	st.Enabled = !st.Enabled
	s.streams[id] = st
	return st, true
}

// --- Live status ---

// IsLive reports whether the stream is live. Unknown streams are not live.
func (s *Store) IsLive(id string) bool {
	s.liveMu.RLock()
	defer s.liveMu.RUnlock()
	return s.live[id]
}

func (s *Store) SetLive(id string, live bool) {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	s.live[id] = live
}

// AIStatus returns the AI pipeline state, defaulting to stopped.
func (s *Store) AIStatus(id string) string {
	s.aiStatusMu.RLock()
	defer s.aiStatusMu.RUnlock()
	if status, ok := s.aiStatus[id]; ok {
		return status
	}
	return domain.AIStatusStopped
}

func (s *Store) SetAIStatus(id, status string) {
	s.aiStatusMu.Lock()
	defer s.aiStatusMu.Unlock()
	s.aiStatus[id] = status
}

// --- Votes ---

// Votes returns the tally for a stream, (0,0) for unknown streams.
func (s *Store) Votes(id string) domain.VoteState {
	s.votesMu.RLock()
	defer s.votesMu.RUnlock()
	return s.votes[id]
}

// SetVotes replaces the tally wholesale. There is no increment primitive:
// callers computing a delta read the tally first, then write the new value.
// Values are stored verbatim; validating them is the caller's job.
func (s *Store) SetVotes(id string, left, right int) {
	s.votesMu.Lock()
	defer s.votesMu.Unlock()
	s.votes[id] = domain.VoteState{LeftVotes: left, RightVotes: right}
}

// --- Viewers ---

// Viewers returns the viewer count for a stream, 0 for unknown streams.
func (s *Store) Viewers(id string) int {
	s.viewersMu.RLock()
	defer s.viewersMu.RUnlock()
	return s.viewers[id]
}

// AllViewers returns a copy of the per-stream viewer counts.
func (s *Store) AllViewers() map[string]int {
	s.viewersMu.RLock()
	defer s.viewersMu.RUnlock()
	out := make(map[string]int, len(s.viewers))
	for id, n := range s.viewers {
		out[id] = n
	}
	return out
}

func (s *Store) SetViewers(id string, count int) {
	s.viewersMu.Lock()
	defer s.viewersMu.Unlock()
	s.viewers[id] = count
}

// --- Debates ---

func (s *Store) Debate(id string) (domain.Debate, bool) {
	s.debatesMu.RLock()
	defer s.debatesMu.RUnlock()
	d, ok := s.debates[id]
	return d, ok
}

// Debates returns all debates ordered by identifier.
func (s *Store) Debates() []domain.Debate {
	s.debatesMu.RLock()
	list := make([]domain.Debate, 0, len(s.debates))
	for _, d := range s.debates {
		list = append(list, d)
	}
	s.debatesMu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (s *Store) CreateDebate(d domain.Debate) domain.Debate {
	s.debatesMu.Lock()
	defer s.debatesMu.Unlock()
	s.debates[d.ID] = d
	return d
}

// UpdateDebate overwrites the debate stored under id. No merge: the caller
// supplies the complete record.
func (s *Store) UpdateDebate(id string, d domain.Debate) domain.Debate {
	d.ID = id
	s.debatesMu.Lock()
	defer s.debatesMu.Unlock()
	s.debates[id] = d
	return d
}

// AssociateStreamDebate assigns a debate to a stream. At most one debate is
// associated per stream; assigning replaces any previous association.
func (s *Store) AssociateStreamDebate(streamID, debateID string) {
	s.streamDebateMu.Lock()
	defer s.streamDebateMu.Unlock()
	s.streamDebate[streamID] = debateID
}

func (s *Store) RemoveStreamDebate(streamID string) {
	s.streamDebateMu.Lock()
	defer s.streamDebateMu.Unlock()
	delete(s.streamDebate, streamID)
}

// StreamDebate resolves the debate associated with a stream. Returns false
// when the stream has no association or the referenced debate is gone.
func (s *Store) StreamDebate(streamID string) (domain.Debate, bool) {
	s.streamDebateMu.RLock()
	debateID, ok := s.streamDebate[streamID]
	s.streamDebateMu.RUnlock()
	if !ok {
		return domain.Debate{}, false
	}
	return s.Debate(debateID)
}

// --- AI content ---

// AddAIContent appends a content item in display order (newest first). An
// empty identifier gets a generated "ai-N" one, a zero timestamp the current
// time.
func (s *Store) AddAIContent(c domain.AIContent) domain.AIContent {
	if c.ID == "" {
		c.ID = fmt.Sprintf("ai-%d", s.contentSeq.Add(1)-1)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.clock.Now()
	}
	if c.Comments == nil {
		c.Comments = []domain.Comment{}
	}

	s.contentsMu.Lock()
	defer s.contentsMu.Unlock()
	s.contents = append([]domain.AIContent{c}, s.contents...)
	return c
}

// AIContents returns one page of content, optionally filtered by stream.
// Pagination is 1-indexed; pages beyond the end are empty, never an error.
func (s *Store) AIContents(page, pageSize int, streamID string) []domain.AIContent {
	s.contentsMu.RLock()
	defer s.contentsMu.RUnlock()

	filtered := s.filterContentsLocked(streamID)
	return paginate(filtered, page, pageSize)
}

// AIContentTotal counts content items, optionally filtered by stream.
func (s *Store) AIContentTotal(streamID string) int {
	s.contentsMu.RLock()
	defer s.contentsMu.RUnlock()
	return len(s.filterContentsLocked(streamID))
}

func (s *Store) filterContentsLocked(streamID string) []domain.AIContent {
	if streamID == "" {
		return append([]domain.AIContent(nil), s.contents...)
	}
	var filtered []domain.AIContent
	for _, c := range s.contents {
		if c.StreamID == streamID {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (s *Store) AIContent(id string) (domain.AIContent, bool) {
	s.contentsMu.RLock()
	defer s.contentsMu.RUnlock()
	for _, c := range s.contents {
		if c.ID == id {
			return c, true
		}
	}
	return domain.AIContent{}, false
}

// AIContentComments pages through the embedded comments of one content item.
// Unknown content identifiers yield an empty result.
func (s *Store) AIContentComments(contentID string, page, pageSize int) []domain.Comment {
	c, ok := s.AIContent(contentID)
	if !ok {
		return []domain.Comment{}
	}
	return paginate(c.Comments, page, pageSize)
}

// DeleteAIContent removes a content item and its comments with it. Unknown
// identifiers are a no-op.
func (s *Store) DeleteAIContent(id string) {
	s.contentsMu.Lock()
	defer s.contentsMu.Unlock()
	for i, c := range s.contents {
		if c.ID == id {
			s.contents = append(s.contents[:i], s.contents[i+1:]...)
			return
		}
	}
}

// --- Debate flow ---

// DebateFlow returns the scripted agenda for a stream, empty by default.
func (s *Store) DebateFlow(streamID string) []domain.FlowSegment {
	s.flowsMu.RLock()
	defer s.flowsMu.RUnlock()
	segments, ok := s.flows[streamID]
	if !ok {
		return []domain.FlowSegment{}
	}
	return append([]domain.FlowSegment(nil), segments...)
}

// SetDebateFlow replaces the agenda wholesale. Segments are not edited
// incrementally; every save carries the full sequence.
func (s *Store) SetDebateFlow(streamID string, segments []domain.FlowSegment) {
	copied := append([]domain.FlowSegment(nil), segments...)
	s.flowsMu.Lock()
	defer s.flowsMu.Unlock()
	s.flows[streamID] = copied
}

// --- Users ---

// Users returns one page of viewer records.
func (s *Store) Users(page, pageSize int) []domain.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	return paginate(s.users, page, pageSize)
}

func (s *Store) UsersTotal() int {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	return len(s.users)
}

func (s *Store) AddUser(u domain.User) domain.User {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	s.users = append(s.users, u)
	return u
}

// paginate slices one 1-indexed page out of items. Non-positive page or
// pageSize and pages past the end yield an empty slice.
func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	// from can overflow to a negative value for absurdly large pages; treat
	// that the same as a page past the end.
	from := (page - 1) * pageSize
	if from < 0 || from >= len(items) {
		return []T{}
	}
	to := min(from+pageSize, len(items))
	return append([]T{}, items[from:to]...)
}

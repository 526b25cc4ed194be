package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/RJYJJL/LIVE/internal/domain"
	"github.com/RJYJJL/LIVE/internal/metrics"
)

const (
	maxSessions    = 512
	commandTimeout = 5 * time.Second
	stopTimeout    = 10 * time.Second
)

// hubCmd is the command interface for the Hub actor.
type hubCmd interface{ isHubCmd() }

type baseHubCmd struct{}

func (baseHubCmd) isHubCmd() {}

type registerCmd struct {
	baseHubCmd
	sessionID    uuid.UUID
	connection   *websocket.Conn
	errorChannel chan error
}

type unregisterCmd struct {
	baseHubCmd
	sessionID uuid.UUID
}

type broadcastCmd struct {
	baseHubCmd
	kind string
	data []byte
}

type sessionCountCmd struct {
	baseHubCmd
	replyChannel chan int
}

type stopCmd struct {
	baseHubCmd
}

// Hub owns the registry of connected realtime sessions and fans events out
// to all of them. A single goroutine consumes commands, so the registry needs
// no locks; each session has its own writer goroutine, so one slow or broken
// connection never stalls delivery to the rest.
type Hub struct {
	cmdCh    chan hubCmd
	clock    clockwork.Clock
	sessions map[uuid.UUID]*clientWriter
	done     chan struct{}
}

var _ domain.Broadcaster = (*Hub)(nil)

// NewHub creates the hub and starts its actor goroutine.
func NewHub(clock clockwork.Clock) *Hub {
	h := &Hub{
		cmdCh:    make(chan hubCmd, 256),
		clock:    clock,
		sessions: make(map[uuid.UUID]*clientWriter),
		done:     make(chan struct{}),
	}
	go h.run()
	return h
}

// Register adds a session. Idempotent per identifier: re-registering an id
// replaces the previous connection. The new session receives a synthetic
// "connected" event; nobody else does.
func (h *Hub) Register(sessionID uuid.UUID, conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	select {
	case h.cmdCh <- registerCmd{sessionID: sessionID, connection: conn, errorChannel: errCh}:
	case <-h.done:
		conn.Close()
		return fmt.Errorf("hub is stopped")
	}

	timer := h.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case err := <-errCh:
		return err
	case <-h.done:
		return fmt.Errorf("hub is stopped")
	case <-timer.Chan():
		return fmt.Errorf("register command timed out after %v", commandTimeout)
	}
}

// Unregister removes a session. Once removed it receives no further events.
func (h *Hub) Unregister(sessionID uuid.UUID) {
	select {
	case h.cmdCh <- unregisterCmd{sessionID: sessionID}:
	case <-h.done:
	}
}

// Broadcast serializes {"type": kind, "data": data} once and delivers it to
// every registered session, best-effort. A nil payload becomes an empty
// object. With no sessions registered this is a no-op.
func (h *Hub) Broadcast(kind string, data any) {
	payload, err := marshalEnvelope(kind, data)
	if err != nil {
		slog.Error("Failed to marshal broadcast message", "kind", kind, "error", err)
		return
	}
	select {
	case h.cmdCh <- broadcastCmd{kind: kind, data: payload}:
	case <-h.done:
	}
}

// SessionCount returns the number of registered sessions, or -1 on timeout.
// A stopped hub has an empty registry, so it reports zero.
func (h *Hub) SessionCount() int {
	replyCh := make(chan int, 1)
	select {
	case h.cmdCh <- sessionCountCmd{replyChannel: replyCh}:
	case <-h.done:
		return 0
	}

	timer := h.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case count := <-replyCh:
		return count
	case <-h.done:
		return 0
	case <-timer.Chan():
		slog.Warn("SessionCount timed out", "timeout", commandTimeout)
		return -1
	}
}

// Stop shuts the hub down, closing all session connections. Blocks until the
// actor goroutine exits or the stop timeout passes.
func (h *Hub) Stop() {
	select {
	case h.cmdCh <- stopCmd{}:
	case <-h.done:
		return
	}

	timer := h.clock.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case <-h.done:
		slog.Info("Hub stopped gracefully")
	case <-timer.Chan():
		slog.Warn("Hub stop timeout exceeded", "timeout", stopTimeout)
	}
}

func (h *Hub) run() {
	defer close(h.done)

	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case registerCmd:
			h.handleRegister(c)
		case unregisterCmd:
			h.handleUnregister(c.sessionID, "client disconnected")
		case broadcastCmd:
			h.handleBroadcast(c)
		case sessionCountCmd:
			c.replyChannel <- len(h.sessions)
		case stopCmd:
			h.handleStop()
			return
		default:
			slog.Warn("Hub received unknown command type", "command_type", fmt.Sprintf("%T", cmd))
		}
	}
}

func (h *Hub) handleRegister(c registerCmd) {
	if len(h.sessions) >= maxSessions {
		slog.Warn("Rejecting session: max sessions reached", "max_sessions", maxSessions)
		c.connection.Close()
		c.errorChannel <- fmt.Errorf("max sessions (%d) reached", maxSessions)
		return
	}

	// Replace a stale writer if the identifier is already registered.
	if old, ok := h.sessions[c.sessionID]; ok {
		old.stop()
	}

	cw := newClientWriter(c.connection, h.clock)
	h.sessions[c.sessionID] = cw

	metrics.WebSocketConnectionsTotal.Inc()
	metrics.WebSocketConnectionsCurrent.Set(float64(len(h.sessions)))
	slog.Info("Session registered", "session_id", c.sessionID.String(), "total_sessions", len(h.sessions))

	welcome, err := marshalEnvelope(domain.EventConnected, map[string]any{
		"message":   "connection established",
		"sessionId": c.sessionID.String(),
	})
	if err == nil {
		cw.enqueue(welcome)
	}

	c.errorChannel <- nil
}

func (h *Hub) handleUnregister(sessionID uuid.UUID, reason string) {
	cw, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	cw.stop()
	delete(h.sessions, sessionID)
	metrics.WebSocketConnectionsCurrent.Set(float64(len(h.sessions)))
	slog.Info("Session unregistered", "session_id", sessionID.String(), "reason", reason, "remaining_sessions", len(h.sessions))
}

func (h *Hub) handleBroadcast(c broadcastCmd) {
	metrics.BroadcastsTotal.WithLabelValues(c.kind).Inc()

	var slow []uuid.UUID
	for sessionID, cw := range h.sessions {
		if !cw.enqueue(c.data) {
			slow = append(slow, sessionID)
		}
	}

	// A full send buffer means the client stopped draining; treat the
	// session as dead rather than block or buffer further.
	for _, sessionID := range slow {
		metrics.BroadcastSlowSessionsEvicted.Inc()
		h.handleUnregister(sessionID, "send buffer full")
	}
}

func (h *Hub) handleStop() {
	for sessionID, cw := range h.sessions {
		cw.stopGraceful("server shutting down")
		delete(h.sessions, sessionID)
	}
	metrics.WebSocketConnectionsCurrent.Set(0)
}

func marshalEnvelope(kind string, data any) ([]byte, error) {
	if data == nil {
		data = map[string]any{}
	}
	return json.Marshal(map[string]any{"type": kind, "data": data})
}

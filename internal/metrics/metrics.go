// Package metrics defines the Prometheus collectors shared across packages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WebSocket metrics
var (
	// WebSocketConnectionsCurrent tracks currently registered realtime sessions
	WebSocketConnectionsCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_current",
			Help: "Currently registered WebSocket sessions",
		},
	)

	// WebSocketConnectionsTotal counts sessions registered since process start
	WebSocketConnectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_connections_total",
			Help: "Total WebSocket sessions registered since start",
		},
	)

	// WebSocketMessageSendDuration tracks per-frame write latency in seconds
	WebSocketMessageSendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "websocket_message_send_duration_seconds",
			Help:    "WebSocket message send duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// WebSocketPingFailures counts keepalive pings that failed to send
	WebSocketPingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_ping_failures_total",
			Help: "Total WebSocket keepalive ping failures",
		},
	)
)

// Broadcast metrics
var (
	// BroadcastsTotal counts broadcast events by kind
	BroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcasts_total",
			Help: "Total broadcast events by event kind",
		},
		[]string{"kind"},
	)

	// BroadcastSlowSessionsEvicted counts sessions evicted for full send buffers
	BroadcastSlowSessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_slow_sessions_evicted_total",
			Help: "Sessions evicted because their send buffer was full",
		},
	)
)

// Store mutation metrics
var (
	// VoteUpdatesTotal counts vote tally writes by source
	VoteUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_updates_total",
			Help: "Total vote tally writes by source",
		},
		[]string{"source"},
	)

	// LiveTransitionsTotal counts live start/stop transitions
	LiveTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_transitions_total",
			Help: "Live status transitions by direction",
		},
		[]string{"direction"},
	)
)

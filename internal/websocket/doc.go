// Package websocket implements the realtime fan-out: a Hub actor that tracks
// connected sessions and broadcasts typed events to all of them.
//
// Delivery is best-effort: no acks, no retries, no replay for reconnecting
// clients. Inbound frames from subscribers are read by the HTTP handler only
// to detect disconnects and are otherwise discarded.
package websocket

// Package server implements the HTTP surface using the Echo framework.
//
// Handlers are thin glue: they translate requests into store calls and decide
// which events to broadcast afterward. Split by concern: handlers_streams.go,
// handlers_live.go, handlers_ai.go, handlers_debates.go, handlers_flow.go,
// handlers_public.go, handlers_dashboard.go, handlers_ws.go.
package server

// Package store holds all live state in memory: streams, live flags, vote
// tallies, AI status, viewer counts, debates and their stream associations,
// AI content with comments, debate-flow agendas, and flat user records.
//
// Nothing is persisted. Every sub-store is guarded by its own lock; lookups
// for unknown identifiers return zero values, never errors.
package store

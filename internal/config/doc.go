// Package config provides environment-based configuration.
//
// Loads from a .env file when present (godotenv), then the process
// environment. Validates the few fields that have constrained values.
package config

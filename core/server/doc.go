// Package server holds the HTTP server configuration and constants.
//
// The Config struct defines the HTTP port, the API key protecting the furnishing
// endpoints, and the length unit that room reference points are reported in.
// It is embedded by core/config and read by the start command.
package server

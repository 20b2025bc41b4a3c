// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// CrewDraft caps one call to the crew drafting model.
const CrewDraft = 60 * time.Second

// SpriteStat caps a single existence check against sprite storage.
const SpriteStat = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// GRPCDial bounds dialing a remote portrait server and waiting for it to
// report healthy.
const GRPCDial = 5 * time.Second

// MCPCall caps one portrait API call made by an MCP tool. Crew generation
// uses CrewDraft instead.
const MCPCall = 5 * time.Second

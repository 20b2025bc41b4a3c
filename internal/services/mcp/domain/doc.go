// Package domain exposes the portrait API as MCP tools.
//
// Each tool pairs a schema constructor (XTool) with a typed handler
// (XHandler) bound to an api.API, so the same handlers serve an in-process
// service or a remote gRPC client.
package domain

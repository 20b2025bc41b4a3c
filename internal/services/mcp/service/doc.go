// Package service wires MCP transports to the portrait tools.
//
// It knows how to run MCP over stdio or streamable HTTP and how to reach the
// portrait API, either in process or through a remote gRPC server. Tool
// behavior lives in the domain package.
package service

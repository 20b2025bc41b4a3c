// Package discovery holds the default addresses crewportrait services use
// to find each other on a single host.
package discovery

import (
	"net"
	"strconv"
	"strings"
)

const (
	// ServicePortrait is the portrait gRPC server and its JSON gateway.
	ServicePortrait = "portrait"
	// ServiceMCP is the MCP server when it runs over HTTP.
	ServiceMCP = "mcp"
)

// Host is where services listen unless configured otherwise.
const Host = "localhost"

var grpcPorts = map[string]int{
	ServicePortrait: 8090,
}

var httpPorts = map[string]int{
	ServicePortrait: 8091,
	ServiceMCP:      8092,
}

// DefaultGRPCPort returns the conventional gRPC port for a service, or 0.
func DefaultGRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

// DefaultHTTPPort returns the conventional HTTP port for a service, or 0.
func DefaultHTTPPort(service string) int {
	return httpPorts[strings.TrimSpace(service)]
}

// DefaultGRPCAddr returns host:port for a service's gRPC listener.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(DefaultGRPCPort(service))
}

// DefaultHTTPAddr returns host:port for a service's HTTP listener.
func DefaultHTTPAddr(service string) string {
	return defaultAddr(DefaultHTTPPort(service))
}

// OrDefaultHTTPAddr returns value when set, otherwise the service convention.
func OrDefaultHTTPAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultHTTPAddr(service)
}

func defaultAddr(port int) string {
	if port <= 0 {
		return ""
	}
	return net.JoinHostPort(Host, strconv.Itoa(port))
}

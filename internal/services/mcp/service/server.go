package service

import (
	"fmt"

	"github.com/louisbranch/crewportrait/internal/portrait/postcard"
	"github.com/louisbranch/crewportrait/internal/services/mcp/domain"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "crewportrait MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

const (
	mcpPortraitToolsModuleName = "portrait-tools"
	mcpCrewToolsModuleName     = "crew-tools"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.GenerateCharacterInput, domain.CharacterResult](),
	newMCPToolRegistrar[domain.ResolveCharacterInput, domain.CharacterResult](),
	newMCPToolRegistrar[domain.LayerOptionsInput, domain.LayerOptionsResult](),
	newMCPToolRegistrar[domain.CrewGenerateInput, domain.CrewGenerateResult](),
	newMCPToolRegistrar[domain.PostcardLayoutInput, postcard.Layout](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}

func newMCPRegistrationModules(svc api.API) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpPortraitToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				if err := registerTool(registrar, domain.GenerateCharacterTool(), domain.GenerateCharacterHandler(svc)); err != nil {
					return err
				}
				if err := registerTool(registrar, domain.ResolveCharacterTool(), domain.ResolveCharacterHandler(svc)); err != nil {
					return err
				}
				return registerTool(registrar, domain.LayerOptionsTool(), domain.LayerOptionsHandler(svc))
			},
		},
		{
			name: mcpCrewToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				if err := registerTool(registrar, domain.CrewGenerateTool(), domain.CrewGenerateHandler(svc)); err != nil {
					return err
				}
				return registerTool(registrar, domain.PostcardLayoutTool(), domain.PostcardLayoutHandler(svc))
			},
		},
	}
}

// Server hosts the MCP server and, in remote mode, the portrait gRPC
// connection backing it.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// New creates an MCP server whose tools call svc.
func New(svc api.API) (*Server, error) {
	return newServer(svc, nil)
}

func newServer(svc api.API, conn *grpc.ClientConn) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("portrait API is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	for _, module := range newMCPRegistrationModules(svc) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

// Package server exposes the skills controller over the Model Context
// Protocol. Transport and JSON-RPC dispatch are delegated to mcp-go; this
// package only declares the tools and maps their calls onto the controller.
package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/marovole/skillsctl/internal/controller"
)

// Server wraps the MCP server with the routing controller.
type Server struct {
	ctrl   *controller.Controller
	server *server.MCPServer
	log    *slog.Logger

	// fallbackSession identifies the client when the transport supplies no
	// session (stdio serves exactly one client per process, so a stable
	// per-process id preserves the session semantics).
	fallbackSession string
}

// New creates the MCP server and registers all tools and resources.
func New(ctrl *controller.Controller, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		ctrl:            ctrl,
		log:             log,
		fallbackSession: uuid.NewString(),
	}

	s.server = server.NewMCPServer(
		"skillsctl",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithInstructions(
			"Routes free-text requests to skill bundles. Call analyze_and_route "+
				"with the user's message; release skills with deactivate_skill or "+
				"deactivate_all_skills when done.",
		),
	)

	s.registerTools()
	s.registerResources()
	return s
}

// Serve runs the server over stdio until the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("mcp server starting", "transport", "stdio")
	return server.ServeStdio(s.server)
}

// registerTools adds the six controller operations as MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(analyzeAndRouteTool(), s.handleAnalyzeAndRoute)
	s.server.AddTool(listActiveSkillsTool(), s.handleListActiveSkills)
	s.server.AddTool(deactivateSkillTool(), s.handleDeactivateSkill)
	s.server.AddTool(deactivateAllSkillsTool(), s.handleDeactivateAllSkills)
	s.server.AddTool(getSkillIndexTool(), s.handleGetSkillIndex)
	s.server.AddTool(searchSkillsTool(), s.handleSearchSkills)
}

// registerResources exposes skill bodies as addressable resources.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"skillsctl://skill/{name}",
			"Skill content",
			mcp.WithTemplateDescription("Full markdown body of a skill bundle"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleSkillResource,
	)
}

// sessionID resolves the calling client's session identity.
func (s *Server) sessionID(ctx context.Context) string {
	if cs := server.ClientSessionFromContext(ctx); cs != nil {
		if id := cs.SessionID(); id != "" {
			return id
		}
	}
	return s.fallbackSession
}

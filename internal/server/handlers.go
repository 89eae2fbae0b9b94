package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals a controller response into a text tool result. All
// tool responses are structured JSON with a status discriminator.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

type analyzeArgs struct {
	UserMessage string `json:"user_message"`
	MaxSkills   int    `json:"max_skills"`
}

func (s *Server) handleAnalyzeAndRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args analyzeArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	sid := s.sessionID(ctx)
	resp, err := s.ctrl.AnalyzeAndRoute(sid, args.UserMessage, args.MaxSkills)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.log.Info("route",
		"session", sid,
		"status", resp.Status,
		"intent", resp.DetectedIntent,
		"locale", resp.Locale,
		"skills", len(resp.ActivatedSkills),
	)
	return jsonResult(resp)
}

func (s *Server) handleListActiveSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.ctrl.ListActive(s.sessionID(ctx)))
}

type deactivateArgs struct {
	SkillName string `json:"skill_name"`
}

func (s *Server) handleDeactivateSkill(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args deactivateArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.SkillName == "" {
		return mcp.NewToolResultError("skill_name is required"), nil
	}
	return jsonResult(s.ctrl.Deactivate(s.sessionID(ctx), args.SkillName))
}

func (s *Server) handleDeactivateAllSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.ctrl.DeactivateAll(s.sessionID(ctx)))
}

func (s *Server) handleGetSkillIndex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.ctrl.SkillIndex())
}

type searchArgs struct {
	Keyword string `json:"keyword"`
}

func (s *Server) handleSearchSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	return jsonResult(s.ctrl.SearchSkills(args.Keyword))
}

// handleSkillResource serves skillsctl://skill/{name} as raw markdown.
func (s *Server) handleSkillResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	name := strings.TrimPrefix(uri, "skillsctl://skill/")
	if name == "" || name == uri {
		return nil, fmt.Errorf("unrecognized resource uri %q", uri)
	}

	body, err := s.ctrl.SkillBody(name)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     body,
		},
	}, nil
}

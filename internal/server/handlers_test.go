package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/marovole/skillsctl/internal/content"
	"github.com/marovole/skillsctl/internal/controller"
	"github.com/marovole/skillsctl/internal/registry"
	"github.com/marovole/skillsctl/internal/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	doc := strings.Join([]string{
		"---",
		"name: frontend-design",
		"description: UI component work",
		"category: frontend",
		"triggers:",
		"  - {word: 组件, weight: 5}",
		"  - {word: component, weight: 4}",
		"required_intents: [create]",
		"---",
		"# Frontend",
		"Build components.",
	}, "\n")
	if err := os.MkdirAll(filepath.Join(dir, "frontend-design"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "frontend-design", "SKILL.md"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := registry.Scan([]string{dir})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	ctrl := controller.New(reg, content.NewLoader(reg), session.NewStore(), controller.Options{}, nil, nil)
	return New(ctrl, "test", nil)
}

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestHandleAnalyzeAndRoute(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleAnalyzeAndRoute(context.Background(), callReq("analyze_and_route", map[string]any{
		"user_message": "创建一个组件",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	var payload struct {
		Status          string `json:"status"`
		DetectedIntent  string `json:"detected_intent"`
		ActivatedSkills []struct {
			Name string `json:"name"`
		} `json:"activated_skills"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload.Status != "activated" || payload.DetectedIntent != "create" {
		t.Fatalf("payload = %+v", payload)
	}
	if len(payload.ActivatedSkills) != 1 || payload.ActivatedSkills[0].Name != "frontend-design" {
		t.Fatalf("activated = %+v", payload.ActivatedSkills)
	}

	// Same process, no client session: the fallback session carries state.
	res, err = s.handleListActiveSkills(context.Background(), callReq("list_active_skills", nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resultText(t, res), "frontend-design") {
		t.Fatalf("active list missing skill: %s", resultText(t, res))
	}
}

func TestHandleAnalyzeAndRouteValidation(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleAnalyzeAndRoute(context.Background(), callReq("analyze_and_route", map[string]any{}))
	if err != nil {
		t.Fatalf("validation must be a tool error, not a transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("empty user_message accepted")
	}
}

func TestHandleDeactivateSkill(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleDeactivateSkill(context.Background(), callReq("deactivate_skill", map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Fatal("missing skill_name accepted")
	}

	res, err = s.handleDeactivateSkill(context.Background(), callReq("deactivate_skill", map[string]any{
		"skill_name": "frontend-design",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resultText(t, res), "not_found") {
		t.Fatalf("inactive skill should report not_found: %s", resultText(t, res))
	}
}

func TestHandleSkillResource(t *testing.T) {
	s := newTestServer(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = "skillsctl://skill/frontend-design"

	contents, err := s.handleSkillResource(context.Background(), req)
	if err != nil {
		t.Fatalf("resource read: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %+v", contents)
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T", contents[0])
	}
	if tc.MIMEType != "text/markdown" || !strings.Contains(tc.Text, "Build components") {
		t.Fatalf("resource = %+v", tc)
	}

	req.Params.URI = "skillsctl://skill/nope"
	if _, err := s.handleSkillResource(context.Background(), req); err == nil {
		t.Fatal("unknown skill resource accepted")
	}
}

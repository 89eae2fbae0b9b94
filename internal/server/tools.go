package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the skillsctl MCP server.

func analyzeAndRouteTool() mcp.Tool {
	return mcp.NewTool("analyze_and_route",
		mcp.WithDescription("Analyze a user message, classify its intent, and activate the best-matching skill bundles for this session. Returns the matched skills with their markdown content, or a no_match outcome."),
		mcp.WithString("user_message",
			mcp.Required(),
			mcp.Description("The user's free-text request, Chinese or English"),
		),
		mcp.WithNumber("max_skills",
			mcp.Description("Maximum number of skills to activate (1-5, default 1)"),
		),
	)
}

func listActiveSkillsTool() mcp.Tool {
	return mcp.NewTool("list_active_skills",
		mcp.WithDescription("List the skills currently active in this session, the time of the last analysis, and a short summary of the last routed message."),
	)
}

func deactivateSkillTool() mcp.Tool {
	return mcp.NewTool("deactivate_skill",
		mcp.WithDescription("Deactivate a single skill in this session. Reports not_found when the skill was not active."),
		mcp.WithString("skill_name",
			mcp.Required(),
			mcp.Description("Name of the skill to deactivate"),
		),
	)
}

func deactivateAllSkillsTool() mcp.Tool {
	return mcp.NewTool("deactivate_all_skills",
		mcp.WithDescription("Deactivate every skill in this session and report which ones were cleared. Safe to call on an empty session."),
	)
}

func getSkillIndexTool() mcp.Tool {
	return mcp.NewTool("get_skill_index",
		mcp.WithDescription("Get the full skill catalog grouped by category, with each skill's description and trigger words."),
	)
}

func searchSkillsTool() mcp.Tool {
	return mcp.NewTool("search_skills",
		mcp.WithDescription("Search the skill catalog by keyword across names, descriptions, categories, and trigger words."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Case-insensitive search keyword"),
		),
	)
}

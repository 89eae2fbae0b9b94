package controller

// Response shapes for the tool-call surface. Every response carries a status
// discriminator; failure modes map to status values, never to panics or
// untyped errors crossing the tool boundary.

const (
	StatusActivated      = "activated"
	StatusNoMatch        = "no_match"
	StatusDeactivated    = "deactivated"
	StatusNotFound       = "not_found"
	StatusAllDeactivated = "all_deactivated"
)

// ActivatedSkill is one routed skill with the triggers that selected it.
type ActivatedSkill struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	MatchReason []string `json:"match_reason"`
}

// SkillContent carries a skill body, or the per-skill load error when the
// body was unreadable (the other activations proceed regardless).
type SkillContent struct {
	Name    string `json:"name"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RouteResponse is the analyze_and_route result.
type RouteResponse struct {
	Status          string           `json:"status"`
	DetectedIntent  string           `json:"detected_intent"`
	Locale          string           `json:"locale"`
	ActivatedSkills []ActivatedSkill `json:"activated_skills"`
	SkillContents   []SkillContent   `json:"skill_contents,omitempty"`
	Instructions    string           `json:"instructions,omitempty"`
	Message         string           `json:"message,omitempty"`
}

// ListActiveResponse is the list_active_skills result.
type ListActiveResponse struct {
	ActiveSkills   []string `json:"active_skills"`
	LastAnalysis   string   `json:"last_analysis,omitempty"`
	ContextSummary string   `json:"context_summary"`
}

// DeactivateResponse is the deactivate_skill result.
type DeactivateResponse struct {
	Status          string   `json:"status"`
	RemainingActive []string `json:"remaining_active"`
}

// DeactivateAllResponse is the deactivate_all_skills result.
type DeactivateAllResponse struct {
	Status            string   `json:"status"`
	Count             int      `json:"count"`
	DeactivatedSkills []string `json:"deactivated_skills"`
}

// IndexSkill is the per-skill entry in index and search responses.
type IndexSkill struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Triggers    []string `json:"triggers"`
}

// IndexCategory is one category bucket of get_skill_index.
type IndexCategory struct {
	Category string       `json:"category"`
	Count    int          `json:"count"`
	Skills   []IndexSkill `json:"skills"`
}

// IndexResponse is the get_skill_index result.
type IndexResponse struct {
	Total      int             `json:"total"`
	ByCategory []IndexCategory `json:"by_category"`
}

// SearchResponse is the search_skills result.
type SearchResponse struct {
	Matches int          `json:"matches"`
	Skills  []IndexSkill `json:"skills"`
}

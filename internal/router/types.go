package router

// Intent is the inferred user goal category for skill routing.
type Intent string

const (
	IntentCreate               Intent = "create"
	IntentResearch             Intent = "research"
	IntentDebug                Intent = "debug"
	IntentRefactor             Intent = "refactor"
	IntentDocument             Intent = "document"
	IntentTest                 Intent = "test"
	IntentTestWriteUnit        Intent = "test_write_unit"
	IntentTestWriteIntegration Intent = "test_write_integration"
	IntentTestWriteE2E         Intent = "test_write_e2e"
	IntentTestRun              Intent = "test_run"
	IntentDeploy               Intent = "deploy"
	IntentAnalyze              Intent = "analyze"
	IntentConvert              Intent = "convert"
	IntentChat                 Intent = "chat"
	IntentUnknown              Intent = "unknown"
)

// Locale is the detected input language, used only to pick response phrasing.
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// MatchResult is one ranked skill candidate for a message.
type MatchResult struct {
	SkillName string `json:"skill_name"`
	// Score is the sum of matched trigger weights.
	Score int `json:"score"`
	// MatchedTriggers lists the literal trigger words that fired, in the
	// skill's trigger order. Returned to callers as the match reason.
	MatchedTriggers []string `json:"matched_triggers"`
}

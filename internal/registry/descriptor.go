package registry

// Trigger is a weighted keyword that contributes to a skill's match score
// when it appears (case-insensitively) in a user message.
type Trigger struct {
	Word   string `yaml:"word"`
	Weight int    `yaml:"weight"`
}

// SkillDescriptor is the routing metadata for one skill bundle.
// Descriptors are built once at startup by Scan and never mutated;
// they are shared read-only across all sessions.
type SkillDescriptor struct {
	// Name is the unique, stable identifier for the skill.
	Name string `yaml:"name"`

	// Description is a one-line summary shown in indexes and search results.
	Description string `yaml:"description"`

	// Category groups skills for reporting (frontend, testing, ops, ...).
	Category string `yaml:"category"`

	// Priority breaks ties between skills with equal match scores.
	// Higher wins.
	Priority int `yaml:"priority"`

	// Triggers are the weighted keywords scored against the message.
	Triggers []Trigger `yaml:"triggers"`

	// Excludes disqualify the skill entirely when present in the message,
	// regardless of trigger score.
	Excludes []string `yaml:"excludes"`

	// RequiredIntents, when non-empty, restrict the skill to messages whose
	// classified intent is a member of the set.
	RequiredIntents []string `yaml:"required_intents"`

	// ExcludedIntents disqualify the skill when the classified intent matches.
	ExcludedIntents []string `yaml:"excluded_intents"`

	// Path is the skill markdown file the descriptor was loaded from.
	// Empty for descriptors constructed directly (tests, fixtures).
	Path string `yaml:"-"`
}

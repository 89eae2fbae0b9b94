package router

import (
	"sort"
	"strings"

	"github.com/marovole/skillsctl/internal/registry"
)

// MatchSkills scores every registered skill against message under the
// classified intent and returns the candidates ranked by score descending,
// then priority descending, then registry order. The sort is stable so equal
// candidates never reorder between calls.
//
// Per skill: intent gating first (required set, then excluded set), then
// exclude words, then trigger scoring. Zero-score skills are not candidates.
func MatchSkills(message string, intent Intent, reg *registry.Registry) []MatchResult {
	lowered := strings.ToLower(message)
	skills := reg.All()

	type candidate struct {
		MatchResult
		priority int
		order    int
	}
	var cands []candidate

	for i, s := range skills {
		if len(s.RequiredIntents) > 0 && !containsIntent(s.RequiredIntents, intent) {
			continue
		}
		if containsIntent(s.ExcludedIntents, intent) {
			continue
		}
		if hasExcludeWord(lowered, s.Excludes) {
			continue
		}

		score := 0
		var matched []string
		for _, t := range s.Triggers {
			if strings.Contains(lowered, strings.ToLower(t.Word)) {
				score += t.Weight
				matched = append(matched, t.Word)
			}
		}
		if score == 0 {
			continue
		}

		cands = append(cands, candidate{
			MatchResult: MatchResult{SkillName: s.Name, Score: score, MatchedTriggers: matched},
			priority:    s.Priority,
			order:       i,
		})
	}

	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].Score != cands[b].Score {
			return cands[a].Score > cands[b].Score
		}
		if cands[a].priority != cands[b].priority {
			return cands[a].priority > cands[b].priority
		}
		return cands[a].order < cands[b].order
	})

	out := make([]MatchResult, len(cands))
	for i, c := range cands {
		out[i] = c.MatchResult
	}
	return out
}

func containsIntent(set []string, intent Intent) bool {
	for _, s := range set {
		if Intent(s) == intent {
			return true
		}
	}
	return false
}

func hasExcludeWord(lowered string, excludes []string) bool {
	for _, w := range excludes {
		if w == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

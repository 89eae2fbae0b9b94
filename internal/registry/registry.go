// Package registry holds the static skill catalog: descriptors scanned from
// skill directories at startup, plus read-only lookup, index, and search
// views over them. The registry is immutable after construction and safe for
// concurrent use without locking.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is the immutable skill catalog. Order follows scan order, which
// is the tie-break of last resort during ranking.
type Registry struct {
	skills []SkillDescriptor
	byName map[string]int
}

// New builds a registry from descriptors, preserving their order.
// Duplicate names are rejected.
func New(skills []SkillDescriptor) (*Registry, error) {
	byName := make(map[string]int, len(skills))
	for i, s := range skills {
		if s.Name == "" {
			return nil, fmt.Errorf("skill at index %d has no name", i)
		}
		if prev, ok := byName[s.Name]; ok {
			return nil, fmt.Errorf("duplicate skill name %q (index %d and %d)", s.Name, prev, i)
		}
		byName[s.Name] = i
	}
	return &Registry{skills: skills, byName: byName}, nil
}

// Len returns the number of registered skills.
func (r *Registry) Len() int { return len(r.skills) }

// All returns the descriptors in registration order. The returned slice is
// shared; callers must not modify it.
func (r *Registry) All() []SkillDescriptor { return r.skills }

// Lookup returns the descriptor for name.
func (r *Registry) Lookup(name string) (SkillDescriptor, bool) {
	i, ok := r.byName[name]
	if !ok {
		return SkillDescriptor{}, false
	}
	return r.skills[i], true
}

// CategoryGroup is one bucket of the category index.
type CategoryGroup struct {
	Category string
	Skills   []SkillDescriptor
}

// ByCategory groups all skills by category, categories sorted alphabetically
// and skills kept in registration order. Skills without a category land in
// "uncategorized".
func (r *Registry) ByCategory() []CategoryGroup {
	buckets := make(map[string][]SkillDescriptor)
	for _, s := range r.skills {
		cat := s.Category
		if cat == "" {
			cat = "uncategorized"
		}
		buckets[cat] = append(buckets[cat], s)
	}

	cats := make([]string, 0, len(buckets))
	for cat := range buckets {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	groups := make([]CategoryGroup, 0, len(cats))
	for _, cat := range cats {
		groups = append(groups, CategoryGroup{Category: cat, Skills: buckets[cat]})
	}
	return groups
}

// Search returns skills whose name, description, category, or any trigger
// word contains keyword (case-insensitive), in registration order.
// An empty keyword matches nothing.
func (r *Registry) Search(keyword string) []SkillDescriptor {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil
	}

	var out []SkillDescriptor
	for _, s := range r.skills {
		if matchesKeyword(s, kw) {
			out = append(out, s)
		}
	}
	return out
}

func matchesKeyword(s SkillDescriptor, kw string) bool {
	if strings.Contains(strings.ToLower(s.Name), kw) ||
		strings.Contains(strings.ToLower(s.Description), kw) ||
		strings.Contains(strings.ToLower(s.Category), kw) {
		return true
	}
	for _, t := range s.Triggers {
		if strings.Contains(strings.ToLower(t.Word), kw) {
			return true
		}
	}
	return false
}

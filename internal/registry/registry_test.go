package registry

import (
	"reflect"
	"testing"
)

func TestNewRejectsDuplicatesAndEmptyNames(t *testing.T) {
	if _, err := New([]SkillDescriptor{{Name: "a"}, {Name: "a"}}); err == nil {
		t.Fatal("duplicate name accepted")
	}
	if _, err := New([]SkillDescriptor{{Name: ""}}); err == nil {
		t.Fatal("empty name accepted")
	}
}

func TestLookupAndAllPreserveOrder(t *testing.T) {
	reg, err := New([]SkillDescriptor{{Name: "b"}, {Name: "a"}, {Name: "c"}})
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, s := range reg.All() {
		names = append(names, s.Name)
	}
	if !reflect.DeepEqual(names, []string{"b", "a", "c"}) {
		t.Fatalf("order = %v", names)
	}

	if s, ok := reg.Lookup("a"); !ok || s.Name != "a" {
		t.Fatalf("Lookup(a) = %+v, %v", s, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing skill")
	}
}

func TestByCategory(t *testing.T) {
	reg, err := New([]SkillDescriptor{
		{Name: "x", Category: "testing"},
		{Name: "y", Category: "frontend"},
		{Name: "z"},
		{Name: "w", Category: "frontend"},
	})
	if err != nil {
		t.Fatal(err)
	}

	groups := reg.ByCategory()
	var cats []string
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	if !reflect.DeepEqual(cats, []string{"frontend", "testing", "uncategorized"}) {
		t.Fatalf("categories = %v", cats)
	}
	if len(groups[0].Skills) != 2 || groups[0].Skills[0].Name != "y" {
		t.Fatalf("frontend group = %+v", groups[0].Skills)
	}
}

func TestSearch(t *testing.T) {
	reg, err := New([]SkillDescriptor{
		{Name: "frontend-design", Description: "UI component work"},
		{Name: "deploy-ops", Category: "ops", Triggers: []Trigger{{Word: "Docker", Weight: 1}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		keyword string
		want    int
	}{
		{name: "by_name", keyword: "frontend", want: 1},
		{name: "by_description", keyword: "COMPONENT", want: 1},
		{name: "by_trigger_word", keyword: "docker", want: 1},
		{name: "by_category", keyword: "ops", want: 1},
		{name: "miss", keyword: "zzz", want: 0},
		{name: "empty", keyword: "  ", want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := reg.Search(tc.keyword); len(got) != tc.want {
				t.Fatalf("Search(%q) = %d results, want %d", tc.keyword, len(got), tc.want)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxMessageLen != 2000 {
		t.Fatalf("MaxMessageLen = %d, want 2000", cfg.MaxMessageLen)
	}
	if cfg.DefaultMaxSkills != 1 || cfg.MaxSkillsBound != 5 {
		t.Fatalf("skill bounds = %d/%d", cfg.DefaultMaxSkills, cfg.MaxSkillsBound)
	}
	if len(cfg.SkillDirs) == 0 {
		t.Fatal("no default skill dirs")
	}
	if cfg.History.Enabled {
		t.Fatal("history enabled by default")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := strings.Join([]string{
		"skill_dirs:",
		"  - /opt/skills",
		"max_message_len: 500",
		"history:",
		"  enabled: true",
		"  path: " + filepath.Join(dir, "h.db"),
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.SkillDirs, []string{"/opt/skills"}) {
		t.Fatalf("SkillDirs = %v", cfg.SkillDirs)
	}
	if cfg.MaxMessageLen != 500 {
		t.Fatalf("MaxMessageLen = %d", cfg.MaxMessageLen)
	}
	if !cfg.History.Enabled {
		t.Fatal("history override lost")
	}
	// Untouched keys keep their defaults.
	if cfg.MaxSkillsBound != 5 {
		t.Fatalf("MaxSkillsBound = %d, want default 5", cfg.MaxSkillsBound)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config accepted")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SKILLSCTL_SKILL_DIRS", "/a"+string(os.PathListSeparator)+"/b")
	t.Setenv("SKILLSCTL_HISTORY_DB", "/tmp/hist.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.SkillDirs, []string{"/a", "/b"}) {
		t.Fatalf("SkillDirs = %v", cfg.SkillDirs)
	}
	if !cfg.History.Enabled || cfg.History.Path != "/tmp/hist.db" {
		t.Fatalf("history = %+v", cfg.History)
	}
}

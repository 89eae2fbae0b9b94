// Package config loads and manages skillsctl configuration.
// Configuration source priority (highest to lowest):
// 1. Environment variables (SKILLSCTL_SKILL_DIRS, SKILLSCTL_HISTORY_DB, ...)
// 2. Config file path specified via --config flag
// 3. ~/.config/skillsctl/config.yaml
// 4. Embedded defaults
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config_default.yaml
var defaultConfigYAML []byte

// Config is the complete configuration structure for skillsctl.
type Config struct {
	// SkillDirs are the directories scanned for skill bundles, in priority
	// order (earlier dirs shadow later ones on duplicate names).
	SkillDirs []string `yaml:"skill_dirs"`

	// MaxMessageLen rejects user messages longer than this many characters.
	MaxMessageLen int `yaml:"max_message_len"`

	// DefaultMaxSkills is the activation bound when a caller omits
	// max_skills.
	DefaultMaxSkills int `yaml:"default_max_skills"`

	// MaxSkillsBound is the hard cap on max_skills (callers are clamped).
	MaxSkillsBound int `yaml:"max_skills_bound"`

	// History holds the routing-log settings.
	History HistoryConfig `yaml:"history"`
}

// HistoryConfig controls the SQLite routing log.
type HistoryConfig struct {
	// Enabled toggles recording. Disabled = no database file is touched.
	Enabled bool `yaml:"enabled"`

	// Path is the database file. Empty = ~/.local/share/skillsctl/history.db.
	Path string `yaml:"path"`
}

// Load reads configuration, merging file values over embedded defaults and
// environment variables over both. An explicit path that does not exist is
// an error; the default path is optional.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultConfigYAML, cfg); err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}

	explicit := path != ""
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "skillsctl", "config.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case explicit:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	expandPaths(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SKILLSCTL_SKILL_DIRS"); v != "" {
		var dirs []string
		for _, d := range strings.Split(v, string(os.PathListSeparator)) {
			if d = strings.TrimSpace(d); d != "" {
				dirs = append(dirs, d)
			}
		}
		if len(dirs) > 0 {
			cfg.SkillDirs = dirs
		}
	}
	if v := os.Getenv("SKILLSCTL_HISTORY_DB"); v != "" {
		cfg.History.Enabled = true
		cfg.History.Path = v
	}
}

// expandPaths resolves ~ and fills in derived defaults.
func expandPaths(cfg *Config) {
	home, _ := os.UserHomeDir()

	for i, d := range cfg.SkillDirs {
		cfg.SkillDirs[i] = expandHome(d, home)
	}
	if cfg.History.Path == "" && home != "" {
		cfg.History.Path = filepath.Join(home, ".local", "share", "skillsctl", "history.db")
	} else {
		cfg.History.Path = expandHome(cfg.History.Path, home)
	}
}

func expandHome(p, home string) string {
	if home == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

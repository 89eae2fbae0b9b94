package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scan builds a registry from the given skill directories, in order.
//
// Two layouts are recognized inside each directory:
//  1. bundle dirs:  <dir>/<name>/SKILL.md
//  2. flat files:   <dir>/<name>.md
//
// The first directory that provides a skill name wins; later duplicates are
// skipped silently so a local skill set can shadow a global one. A skill file
// that exists but cannot be parsed is a fatal error: a half-loaded catalog
// would route nondeterministically.
func Scan(dirs []string) (*Registry, error) {
	seen := make(map[string]bool)
	var skills []SkillDescriptor

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Missing directories are tolerated; configured paths may not
			// exist on every machine.
			continue
		}
		for _, e := range entries {
			var path string
			switch {
			case e.IsDir():
				path = filepath.Join(dir, e.Name(), "SKILL.md")
				if _, err := os.Stat(path); err != nil {
					continue
				}
			case strings.HasSuffix(e.Name(), ".md"):
				path = filepath.Join(dir, e.Name())
			default:
				continue
			}

			desc, err := ParseSkillFile(path)
			if err != nil {
				return nil, err
			}
			if seen[desc.Name] {
				continue
			}
			seen[desc.Name] = true
			skills = append(skills, desc)
		}
	}

	return New(skills)
}

// ParseSkillFile reads one skill markdown file and decodes its YAML
// frontmatter into a descriptor. The markdown body below the frontmatter is
// not retained here; content.Loader reads it on demand.
func ParseSkillFile(path string) (SkillDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SkillDescriptor{}, fmt.Errorf("read skill %s: %w", path, err)
	}

	fm, _, ok := SplitFrontmatter(string(data))
	if !ok {
		return SkillDescriptor{}, fmt.Errorf("skill %s: missing YAML frontmatter", path)
	}

	var desc SkillDescriptor
	if err := yaml.Unmarshal([]byte(fm), &desc); err != nil {
		return SkillDescriptor{}, fmt.Errorf("skill %s: bad frontmatter: %w", path, err)
	}

	if desc.Name == "" {
		// Fall back to the file's own name: bundle dir name, or filename
		// without extension for flat files.
		base := filepath.Base(path)
		if base == "SKILL.md" {
			desc.Name = filepath.Base(filepath.Dir(path))
		} else {
			desc.Name = strings.TrimSuffix(base, ".md")
		}
	}
	if len(desc.Triggers) == 0 {
		return SkillDescriptor{}, fmt.Errorf("skill %s: no triggers defined", path)
	}
	for i, t := range desc.Triggers {
		if t.Word == "" {
			return SkillDescriptor{}, fmt.Errorf("skill %s: trigger %d has empty word", path, i)
		}
		if t.Weight == 0 {
			desc.Triggers[i].Weight = 1
		}
	}

	desc.Path = path
	return desc, nil
}

// SplitFrontmatter splits a markdown document into its YAML frontmatter and
// body. Returns ok=false when the document does not start with "---".
func SplitFrontmatter(content string) (frontmatter, body string, ok bool) {
	trimmed := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(trimmed, "---\n") {
		return "", "", false
	}
	rest := trimmed[4:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", "", false
	}
	fm := rest[:end]
	body = rest[end+4:]
	// Drop the newline that terminated the closing fence, if any.
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}
	return fm, body, true
}

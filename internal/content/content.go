// Package content reads skill bundle bodies from disk. The registry knows
// where each skill lives; this package turns that path into the markdown
// text handed to clients on activation.
package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/marovole/skillsctl/internal/registry"
)

// NotFoundError reports that a skill's body could not be read. Activation
// treats this as recoverable: the skill entry carries the error, the other
// requested skills still load.
type NotFoundError struct {
	Skill string
	Path  string
	Err   error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("skill %q: content not readable at %s: %v", e.Skill, e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Loader resolves skill names to their markdown bodies via the registry.
type Loader struct {
	reg *registry.Registry
}

func NewLoader(reg *registry.Registry) *Loader {
	return &Loader{reg: reg}
}

// Body returns the markdown body of the named skill with its frontmatter
// stripped. A missing descriptor or unreadable file yields *NotFoundError.
func (l *Loader) Body(name string) (string, error) {
	desc, ok := l.reg.Lookup(name)
	if !ok {
		return "", &NotFoundError{Skill: name, Path: "", Err: os.ErrNotExist}
	}

	data, err := os.ReadFile(desc.Path)
	if err != nil {
		return "", &NotFoundError{Skill: name, Path: desc.Path, Err: err}
	}

	if _, body, ok := registry.SplitFrontmatter(string(data)); ok {
		return strings.TrimSpace(body), nil
	}
	return strings.TrimSpace(string(data)), nil
}

// Package session tracks which skills each MCP client connection has
// loaded. Sessions are keyed by the transport's session identifier and are
// fully isolated: no state is shared between them except the read-only
// registry upstream.
package session

import (
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

// contextPreviewWidth is the display width the last user message is
// truncated to in ListActive snapshots.
const contextPreviewWidth = 100

// Session is the mutable per-connection state. All access goes through its
// mutex: calls within one session serialize, different sessions run in
// parallel.
type Session struct {
	mu sync.Mutex

	// active holds currently loaded skill names in activation order.
	active []string
	// contentCache maps active skill names to their loaded bodies.
	// Invariant: keys are always a subset of active; deactivation removes
	// the flag and the cache entry under the same lock acquisition.
	contentCache map[string]string

	lastAnalysis time.Time
	lastContext  string
}

func newSession() *Session {
	return &Session{contentCache: make(map[string]string)}
}

// Activate marks the named skills active and caches their bodies.
// Re-activating an active skill is idempotent: no duplicate entry, cache
// refreshed. Skills missing from contents are activated without a cached
// body (their content fetch failed upstream).
func (s *Session) Activate(names []string, contents map[string]string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range names {
		if !containsName(s.active, name) {
			s.active = append(s.active, name)
		}
		if body, ok := contents[name]; ok {
			s.contentCache[name] = body
		}
	}
	s.lastAnalysis = time.Now()
	s.lastContext = message
}

// DeactivateOne unloads a single skill. Returns false without mutating
// anything when the skill was not active; that is an outcome, not an error.
func (s *Session) DeactivateOne(name string) (remaining []string, wasActive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, n := range s.active {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return append([]string(nil), s.active...), false
	}

	s.active = append(s.active[:idx], s.active[idx+1:]...)
	delete(s.contentCache, name)
	return append([]string(nil), s.active...), true
}

// DeactivateAll clears everything and reports what was unloaded. Calling it
// on an idle session reports zero names and does not error.
func (s *Session) DeactivateAll() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := s.active
	s.active = nil
	s.contentCache = make(map[string]string)
	s.lastAnalysis = time.Time{}
	s.lastContext = ""
	return cleared
}

// Snapshot is the read-only view returned by ListActive.
type Snapshot struct {
	ActiveSkills   []string
	LastAnalysis   time.Time
	ContextSummary string
}

// ListActive returns a copy of the active set, the last analysis time, and
// the last user message truncated to a display-width preview.
func (s *Session) ListActive() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ActiveSkills:   append([]string(nil), s.active...),
		LastAnalysis:   s.lastAnalysis,
		ContextSummary: truncateDisplay(s.lastContext, contextPreviewWidth),
	}
}

// CachedContent returns the cached body for an active skill.
func (s *Session) CachedContent(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.contentCache[name]
	return body, ok
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// truncateDisplay cuts s to at most width terminal cells, appending an
// ellipsis when anything was dropped. Width-aware so CJK context is not cut
// mid-glyph.
func truncateDisplay(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

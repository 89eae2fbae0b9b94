// Package controller is the routing façade: it orchestrates language
// detection, intent classification, trigger ranking, content loading, and
// session state into the tool-call operations the MCP server exposes.
package controller

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/marovole/skillsctl/internal/content"
	"github.com/marovole/skillsctl/internal/registry"
	"github.com/marovole/skillsctl/internal/router"
	"github.com/marovole/skillsctl/internal/session"
)

// RouteRecord is one routing decision handed to the optional history sink.
type RouteRecord struct {
	Time      time.Time
	SessionID string
	Locale    string
	Intent    string
	Status    string
	Skills    []string
	Message   string
}

// Recorder persists routing decisions. Implementations must tolerate being
// called from concurrent sessions.
type Recorder interface {
	Record(rec RouteRecord) error
}

// Options tune the façade's input validation bounds.
type Options struct {
	// MaxMessageLen rejects oversized user messages. 0 = default 2000.
	MaxMessageLen int
	// DefaultMaxSkills is used when a caller passes max_skills <= 0.
	// 0 = default 1. Callers can never exceed MaxSkillsBound.
	DefaultMaxSkills int
	// MaxSkillsBound caps max_skills. 0 = default 5.
	MaxSkillsBound int
}

func (o Options) withDefaults() Options {
	if o.MaxMessageLen <= 0 {
		o.MaxMessageLen = 2000
	}
	if o.DefaultMaxSkills <= 0 {
		o.DefaultMaxSkills = 1
	}
	if o.MaxSkillsBound <= 0 {
		o.MaxSkillsBound = 5
	}
	return o
}

// Controller wires the static registry and content loader to the per-session
// state store. One controller serves all sessions.
type Controller struct {
	reg      *registry.Registry
	loader   *content.Loader
	sessions *session.Store
	opts     Options
	history  Recorder // nil = history disabled
	log      *slog.Logger
}

func New(reg *registry.Registry, loader *content.Loader, sessions *session.Store, opts Options, history Recorder, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		reg:      reg,
		loader:   loader,
		sessions: sessions,
		opts:     opts.withDefaults(),
		history:  history,
		log:      log,
	}
}

// AnalyzeAndRoute detects language, classifies intent, ranks skills, and
// activates the top candidates for the session. An empty ranking is the
// first-class no_match outcome, not an error.
func (c *Controller) AnalyzeAndRoute(sessionID, message string, maxSkills int) (*RouteResponse, error) {
	if message == "" {
		return nil, fmt.Errorf("user_message is required")
	}
	if n := len([]rune(message)); n > c.opts.MaxMessageLen {
		return nil, fmt.Errorf("user_message too long: %d characters (limit %d)", n, c.opts.MaxMessageLen)
	}
	if maxSkills <= 0 {
		maxSkills = c.opts.DefaultMaxSkills
	}
	if maxSkills > c.opts.MaxSkillsBound {
		maxSkills = c.opts.MaxSkillsBound
	}

	locale := router.DetectLocale(message)
	intent := router.ClassifyIntent(message)
	ranked := router.MatchSkills(message, intent, c.reg)

	resp := &RouteResponse{
		DetectedIntent:  string(intent),
		Locale:          string(locale),
		ActivatedSkills: []ActivatedSkill{},
	}

	if len(ranked) == 0 {
		resp.Status = StatusNoMatch
		resp.Message = noMatchHint(locale)
		c.record(sessionID, resp, message, nil)
		return resp, nil
	}

	if len(ranked) > maxSkills {
		ranked = ranked[:maxSkills]
	}

	names := make([]string, 0, len(ranked))
	contents := make(map[string]string, len(ranked))
	for _, m := range ranked {
		desc, _ := c.reg.Lookup(m.SkillName)
		resp.ActivatedSkills = append(resp.ActivatedSkills, ActivatedSkill{
			Name:        m.SkillName,
			Category:    desc.Category,
			MatchReason: m.MatchedTriggers,
		})

		body, err := c.loader.Body(m.SkillName)
		if err != nil {
			// Recoverable: this skill activates without content, the rest
			// of the batch is unaffected.
			c.log.Warn("skill content load failed", "skill", m.SkillName, "err", err)
			resp.SkillContents = append(resp.SkillContents, SkillContent{
				Name:  m.SkillName,
				Error: err.Error(),
			})
		} else {
			contents[m.SkillName] = body
			resp.SkillContents = append(resp.SkillContents, SkillContent{
				Name:    m.SkillName,
				Content: body,
			})
		}
		names = append(names, m.SkillName)
	}

	c.sessions.Get(sessionID).Activate(names, contents, message)

	resp.Status = StatusActivated
	resp.Instructions = activationInstructions(locale)
	c.record(sessionID, resp, message, names)
	return resp, nil
}

// ListActive snapshots the session's active skills and last analysis.
func (c *Controller) ListActive(sessionID string) *ListActiveResponse {
	snap := c.sessions.Get(sessionID).ListActive()

	resp := &ListActiveResponse{
		ActiveSkills:   snap.ActiveSkills,
		ContextSummary: snap.ContextSummary,
	}
	if resp.ActiveSkills == nil {
		resp.ActiveSkills = []string{}
	}
	if !snap.LastAnalysis.IsZero() {
		resp.LastAnalysis = snap.LastAnalysis.UTC().Format(time.RFC3339)
	}
	return resp
}

// Deactivate unloads one skill. Unknown or inactive names yield the
// not_found status with state untouched.
func (c *Controller) Deactivate(sessionID, skillName string) *DeactivateResponse {
	remaining, wasActive := c.sessions.Get(sessionID).DeactivateOne(skillName)
	status := StatusDeactivated
	if !wasActive {
		status = StatusNotFound
	}
	if remaining == nil {
		remaining = []string{}
	}
	return &DeactivateResponse{Status: status, RemainingActive: remaining}
}

// DeactivateAll clears the session; repeated calls report zero cleared.
func (c *Controller) DeactivateAll(sessionID string) *DeactivateAllResponse {
	cleared := c.sessions.Get(sessionID).DeactivateAll()
	if cleared == nil {
		cleared = []string{}
	}
	return &DeactivateAllResponse{
		Status:            StatusAllDeactivated,
		Count:             len(cleared),
		DeactivatedSkills: cleared,
	}
}

// SkillIndex reports the whole catalog grouped by category.
func (c *Controller) SkillIndex() *IndexResponse {
	groups := c.reg.ByCategory()
	resp := &IndexResponse{Total: c.reg.Len(), ByCategory: []IndexCategory{}}
	for _, g := range groups {
		cat := IndexCategory{Category: g.Category, Count: len(g.Skills)}
		for _, s := range g.Skills {
			cat.Skills = append(cat.Skills, toIndexSkill(s))
		}
		resp.ByCategory = append(resp.ByCategory, cat)
	}
	return resp
}

// SkillBody returns the markdown body of a catalog skill. Used by the
// resource surface and the CLI show command.
func (c *Controller) SkillBody(name string) (string, error) {
	return c.loader.Body(name)
}

// SearchSkills finds catalog entries matching keyword.
func (c *Controller) SearchSkills(keyword string) *SearchResponse {
	found := c.reg.Search(keyword)
	resp := &SearchResponse{Matches: len(found), Skills: []IndexSkill{}}
	for _, s := range found {
		resp.Skills = append(resp.Skills, toIndexSkill(s))
	}
	return resp
}

func toIndexSkill(s registry.SkillDescriptor) IndexSkill {
	words := make([]string, len(s.Triggers))
	for i, t := range s.Triggers {
		words[i] = t.Word
	}
	return IndexSkill{Name: s.Name, Description: s.Description, Triggers: words}
}

// record hands the outcome to the history sink, best-effort. History
// failures are logged and swallowed: persistence must never fail a route.
func (c *Controller) record(sessionID string, resp *RouteResponse, message string, skills []string) {
	if c.history == nil {
		return
	}
	err := c.history.Record(RouteRecord{
		Time:      time.Now(),
		SessionID: sessionID,
		Locale:    resp.Locale,
		Intent:    resp.DetectedIntent,
		Status:    resp.Status,
		Skills:    skills,
		Message:   message,
	})
	if err != nil {
		c.log.Warn("history record failed", "err", err)
	}
}

func noMatchHint(locale router.Locale) string {
	if locale == router.LocaleZH {
		return "没有找到匹配的技能。试试更具体的描述，或用 search_skills 浏览可用技能。"
	}
	return "No matching skill found. Try a more specific request, or browse available skills with search_skills."
}

func activationInstructions(locale router.Locale) string {
	if locale == router.LocaleZH {
		return "技能已激活。完成任务后请调用 deactivate_skill 或 deactivate_all_skills 释放技能。"
	}
	return "Skills activated. Call deactivate_skill or deactivate_all_skills to release them when done."
}

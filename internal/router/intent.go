package router

import (
	"regexp"
	"strings"
)

// intentPattern scores one intent: each pattern that matches the message
// contributes weight to the intent's total.
type intentPattern struct {
	intent   Intent
	patterns []*regexp.Regexp
	weight   int
}

func pats(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// intentTable is the fixed, priority-ordered classification table. Order is
// meaningful twice over: specific intents (test_write_e2e) sit above their
// generic parents (test), and score ties resolve to the earlier entry.
// Patterns are matched against the lowercased message.
var intentTable = []intentPattern{
	{IntentTestWriteE2E, pats(
		`写.{0,6}(e2e|端到端).{0,4}测试`, `(e2e|端到端|end.to.end)`,
		`write\s+(an?\s+)?e2e\s+tests?`, `playwright|cypress`,
	), 3},
	{IntentTestWriteIntegration, pats(
		`写.{0,6}集成测试`, `集成测试`, `integration\s+tests?`,
	), 3},
	{IntentTestWriteUnit, pats(
		`写.{0,6}单元测试`, `单元测试`, `unit\s+tests?`, `写.{0,4}用例`,
	), 3},
	{IntentTestRun, pats(
		`跑.{0,4}测试`, `运行.{0,4}测试`, `执行.{0,4}测试`,
		`run\s+(the\s+)?tests?`, `re.?run.{0,10}tests?`,
	), 3},
	{IntentTest, pats(
		`测试`, `\btests?\b`, `\btesting\b`, `覆盖率`, `coverage`,
	), 1},
	{IntentDebug, pats(
		`报错|出错|异常|崩溃|闪退|堆栈|排查|定位|修.{0,3}(bug|问题|错误)`,
		`\bbug\b|\bdebug\b|\bfix\b|error|crash|panic|exception|stack\s*trace`,
		`不工作|失败了|挂了|跑不起来`,
	), 2},
	{IntentRefactor, pats(
		`重构|优化.{0,6}(代码|结构|性能)|整理.{0,4}代码|解耦|拆分`,
		`refactor|clean\s*up|simplif(y|ied)|restructure|extract\s+(method|function)`,
	), 2},
	{IntentDeploy, pats(
		`部署|上线|发布|灰度|回滚`,
		`deploy|release|rollout|roll\s*back|ship\s+it|publish`,
		`docker|k8s|kubernetes|ci/?cd`,
	), 2},
	{IntentDocument, pats(
		`写.{0,6}(文档|说明|注释|readme)|补.{0,4}(文档|注释)`,
		`document(ation)?|readme|docstring|写周报|changelog`,
	), 2},
	{IntentConvert, pats(
		`转换|转成|改写成|迁移到|翻译成`,
		`convert|transform|migrate\s+to|port\s+to|translate\s+to`,
	), 2},
	{IntentAnalyze, pats(
		`分析|统计|评估|对比|比较|审查|review`,
		`analy[sz]e|assess|evaluate|compare|audit|profil(e|ing)`,
	), 2},
	{IntentResearch, pats(
		`查看|看看|了解|调研|研究|搜索|查一下|找一下|源码|资料|文档在哪`,
		`research|investigate|look\s+(at|into)|search|explore|read\s+the\s+source|how\s+does.{0,40}work`,
	), 2},
	{IntentCreate, pats(
		`创建|新建|实现|开发|搭建|生成|做一个|写一个|加一个|添加`,
		`creat(e|ing)|build|implement|develop|scaffold|generate|add\s+a|write\s+a|make\s+a|set\s+up`,
	), 2},
}

// greetingLexicon backs the chat fallback when no intent scores above zero.
var greetingLexicon = []string{
	"你好", "您好", "在吗", "谢谢", "再见", "早上好", "晚上好", "辛苦了",
	"hello", "hi there", "hey", "thanks", "thank you", "bye", "goodbye",
	"good morning", "good evening", "how are you",
}

// ClassifyIntent scores message against the intent table and returns the
// intent with the strictly highest score; ties go to the earlier table
// entry. A message that matches nothing falls back to the greeting lexicon
// for "chat", then to "unknown". Deterministic, never fails.
func ClassifyIntent(message string) Intent {
	s := strings.ToLower(strings.TrimSpace(message))
	if s == "" {
		return IntentUnknown
	}

	best := IntentUnknown
	bestScore := 0
	for _, entry := range intentTable {
		score := 0
		for _, re := range entry.patterns {
			if re.MatchString(s) {
				score += entry.weight
			}
		}
		if score > bestScore {
			best = entry.intent
			bestScore = score
		}
	}
	if bestScore > 0 {
		return best
	}

	if isGreeting(s) {
		return IntentChat
	}
	return IntentUnknown
}

func isGreeting(s string) bool {
	for _, g := range greetingLexicon {
		if strings.Contains(s, g) {
			return true
		}
	}
	// Bare "hi"/"yo" style one-worders.
	switch s {
	case "hi", "yo", "sup", "嗨", "哈喽":
		return true
	}
	return false
}

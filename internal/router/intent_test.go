package router

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "create_zh", text: "创建一个React组件", want: IntentCreate},
		{name: "create_en", text: "implement a login form", want: IntentCreate},
		{name: "research_zh", text: "查看React源码", want: IntentResearch},
		{name: "research_en", text: "investigate how the scheduler works", want: IntentResearch},
		{name: "debug_zh", text: "程序报错了帮我排查", want: IntentDebug},
		{name: "debug_en", text: "fix this panic in the handler", want: IntentDebug},
		{name: "refactor_zh", text: "帮我重构这个模块", want: IntentRefactor},
		{name: "document_en", text: "write documentation for the API", want: IntentDocument},
		{name: "e2e_zh", text: "写E2E测试", want: IntentTestWriteE2E},
		{name: "e2e_en", text: "write an e2e test with playwright", want: IntentTestWriteE2E},
		{name: "unit_zh", text: "给这个函数写单元测试", want: IntentTestWriteUnit},
		{name: "integration_zh", text: "写集成测试覆盖支付流程", want: IntentTestWriteIntegration},
		{name: "test_run_zh", text: "跑一下测试", want: IntentTestRun},
		{name: "test_generic_en", text: "improve the test coverage", want: IntentTest},
		{name: "deploy_zh", text: "把服务部署到生产", want: IntentDeploy},
		{name: "convert_zh", text: "把这段代码转换成TypeScript", want: IntentConvert},
		{name: "analyze_en", text: "profile the memory usage", want: IntentAnalyze},
		{name: "chat_greeting_zh", text: "你好", want: IntentChat},
		{name: "chat_greeting_en", text: "hello there", want: IntentChat},
		{name: "unknown", text: "qwerty zxcvbn", want: IntentUnknown},
		{name: "empty", text: "", want: IntentUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyIntent(tc.text)
			if got != tc.want {
				t.Fatalf("ClassifyIntent(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

// Specific test intents must win over the generic "test" bucket even though
// both score: the specific entries carry more weight and sit earlier.
func TestClassifyIntentSpecificBeatsGeneric(t *testing.T) {
	got := ClassifyIntent("写端到端测试")
	if got != IntentTestWriteE2E {
		t.Fatalf("ClassifyIntent = %q, want %q", got, IntentTestWriteE2E)
	}
}

func TestClassifyIntentDeterministic(t *testing.T) {
	const msg = "重构并优化性能，然后跑测试"
	first := ClassifyIntent(msg)
	for i := 0; i < 10; i++ {
		if got := ClassifyIntent(msg); got != first {
			t.Fatalf("run %d: ClassifyIntent = %q, want stable %q", i, got, first)
		}
	}
}

package router

import "testing"

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Locale
	}{
		{name: "empty", text: "", want: LocaleEN},
		{name: "english", text: "create a react component", want: LocaleEN},
		{name: "chinese", text: "创建一个组件", want: LocaleZH},
		{name: "mixed_mostly_chinese", text: "创建一个React组件", want: LocaleZH},
		{name: "mixed_mostly_english", text: "please refactor the UserService 类", want: LocaleEN},
		{name: "digits_and_punct_only", text: "1234 !?", want: LocaleEN},
		{name: "ext_a_ideograph", text: "㐀㐁㐂", want: LocaleZH},
		{name: "compatibility_ideograph", text: "豈更車", want: LocaleZH},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectLocale(tc.text)
			if got != tc.want {
				t.Fatalf("DetectLocale(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

// The 0.3 cutoff is a strict greater-than: exactly 30% CJK is still English.
func TestDetectLocaleThreshold(t *testing.T) {
	// 3 CJK + 7 Latin = 30% exactly.
	at := "中文字abcdefg"
	if got := DetectLocale(at); got != LocaleEN {
		t.Fatalf("DetectLocale(%q) at 30%% = %q, want en", at, got)
	}

	// 4 CJK + 6 Latin = 40%.
	above := "中文字符abcdef"
	if got := DetectLocale(above); got != LocaleZH {
		t.Fatalf("DetectLocale(%q) at 40%% = %q, want zh", above, got)
	}
}

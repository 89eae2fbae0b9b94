package router

// cjkRatioThreshold is the share of CJK characters (among CJK+Latin) above
// which a message is treated as Chinese. Strictly greater-than: a message at
// exactly 30% CJK still reads as English.
const cjkRatioThreshold = 0.3

// DetectLocale labels text as "zh" or "en" by comparing CJK character count
// to Latin letter count. Text with neither (empty, digits, punctuation)
// defaults to "en". Pure function.
func DetectLocale(text string) Locale {
	var cjk, latin int
	for _, r := range text {
		switch {
		case isCJK(r):
			cjk++
		case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			latin++
		}
	}

	if cjk+latin == 0 {
		return LocaleEN
	}
	if float64(cjk)/float64(cjk+latin) > cjkRatioThreshold {
		return LocaleZH
	}
	return LocaleEN
}

// isCJK reports whether r falls in the unified ideograph ranges:
// URO (4E00-9FFF), Extension A (3400-4DBF), compatibility (F900-FAFF).
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0xF900 && r <= 0xFAFF)
}

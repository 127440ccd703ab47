package accessai

import "strings"

// Translate returns the canned translation of text into targetLang.
// Only exact full-string matches against the fixed corpus translate; any
// miss — unknown text or unlisted language — returns the tagged
// passthrough "[LANG] text". Callers round-trip on that exact format.
func (s *Service) Translate(text, targetLang string) string {
	if byLang, ok := s.translations[text]; ok {
		if translated, ok := byLang[targetLang]; ok {
			return translated
		}
	}
	return "[" + strings.ToUpper(targetLang) + "] " + text
}

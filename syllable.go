package accessai

import "regexp"

// syllableRule substitutes one word with its hyphenated spelling.
type syllableRule struct {
	// re matches the rule word case-insensitively anywhere in the text.
	re *regexp.Regexp
	// hyphenated is the replacement spelling.
	hyphenated string
}

func newSyllableRule(word, hyphenated string) syllableRule {
	return syllableRule{
		re:         regexp.MustCompile(`(?i)` + word),
		hyphenated: hyphenated,
	}
}

// Syllabify replaces every known word in text with its hyphenated form.
// Matches are plain substrings, not word-boundary anchored: a rule word
// embedded inside a longer word is replaced too. Callers depend on this
// staying put, as does the rule iteration order.
func (s *Service) Syllabify(text string) string {
	result := text
	for _, r := range s.syllableRules {
		result = r.re.ReplaceAllString(result, r.hyphenated)
	}
	return result
}

// Package accessai implements the text-to-multimodal pipeline behind the
// AccessAI REST API: simulated sign-language video lookup, simulated
// text-to-speech and translation, and dyslexia-friendly text formatting
// (syllabification, part-of-speech color coding, bionic-reading bolding,
// readability scoring).
//
// All underlying data — sign-language video URLs, translated strings, audio
// URLs — are fixed in-memory tables or deterministically fabricated
// placeholder values. Nothing here performs real speech synthesis,
// translation, or sign-language recognition; the mock contracts are the
// product.
package accessai

// Service holds every reference table and provides the public API.
// The tables are built once by New and never mutated afterwards, so a
// Service is safe for concurrent use by any number of requests.
type Service struct {
	// languages lists every supported language descriptor.
	languages []Language

	// signDBs maps variant → its independent word→video table.
	signDBs map[SignVariant]*signTable

	// translations maps exact source text → language code → translation.
	translations map[string]map[string]string

	// posDict maps lower-cased word → grammatical category.
	posDict map[string]PosTag

	// posColors maps category → display color for color-coded output.
	posColors map[PosTag]string

	// syllableRules is the ordered hyphenation substitution table.
	// Order matters: rules are applied first to last over the whole text.
	syllableRules []syllableRule

	// samples is the fixed demonstration query catalogue.
	samples SampleQueries
}

// New builds a ready-to-use Service with all reference tables loaded.
func New() *Service {
	s := &Service{
		signDBs:      make(map[SignVariant]*signTable),
		translations: make(map[string]map[string]string),
		posDict:      make(map[string]PosTag),
		posColors:    make(map[PosTag]string),
	}
	s.loadLanguages()
	s.loadSignDBs()
	s.loadTranslations()
	s.loadPOS()
	s.loadSyllableRules()
	s.loadSamples()
	return s
}

// Languages returns a copy of the supported language descriptors.
func (s *Service) Languages() []Language {
	out := make([]Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// LanguageByCode looks up a language descriptor by its code.
// It returns nil when the code is not supported.
func (s *Service) LanguageByCode(code string) *Language {
	for i := range s.languages {
		if s.languages[i].Code == code {
			return &s.languages[i]
		}
	}
	return nil
}

// SupportedLanguage reports whether code names a supported language.
func (s *Service) SupportedLanguage(code string) bool {
	return s.LanguageByCode(code) != nil
}

package accessai

import "testing"

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New returned nil")
	}
	t.Logf("loaded %d languages, %d sign variants, %d translated texts, %d POS entries, %d syllable rules",
		len(s.languages), len(s.signDBs), len(s.translations), len(s.posDict), len(s.syllableRules))
	if len(s.languages) != 12 {
		t.Errorf("loaded %d languages, want 12", len(s.languages))
	}
	if len(s.signDBs) != 3 {
		t.Errorf("loaded %d sign variants, want 3", len(s.signDBs))
	}
}

func TestLanguages(t *testing.T) {
	s := New()
	langs := s.Languages()
	if len(langs) != 12 {
		t.Fatalf("Languages() returned %d entries, want 12", len(langs))
	}
	if langs[0].Code != "en" {
		t.Errorf("first language = %q, want en", langs[0].Code)
	}
	// Mutating the returned slice must not touch the service tables.
	langs[0].Code = "xx"
	if s.Languages()[0].Code != "en" {
		t.Error("Languages() exposes internal state")
	}
}

func TestLanguageByCode(t *testing.T) {
	s := New()
	en := s.LanguageByCode("en")
	if en == nil {
		t.Fatal("LanguageByCode(en) = nil")
	}
	if !en.SignLanguage || len(en.SignVariants) != 2 {
		t.Errorf("en = %+v, want ASL and BSL variants", en)
	}
	hi := s.LanguageByCode("hi")
	if hi == nil || hi.NativeName != "हिंदी" {
		t.Errorf("hi = %+v", hi)
	}
	if es := s.LanguageByCode("es"); es == nil || es.SignLanguage {
		t.Errorf("es = %+v, want no sign language", es)
	}
	if s.LanguageByCode("xx") != nil {
		t.Error("LanguageByCode(xx) should be nil")
	}
}

func TestSupportedLanguage(t *testing.T) {
	s := New()
	for _, code := range []string{"en", "hi", "es", "ta", "te", "kn", "zh", "ja", "fr", "de", "ar", "pt"} {
		if !s.SupportedLanguage(code) {
			t.Errorf("SupportedLanguage(%s) = false", code)
		}
	}
	if s.SupportedLanguage("xx") || s.SupportedLanguage("") {
		t.Error("unsupported codes reported as supported")
	}
}

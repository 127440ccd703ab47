package accessai

import (
	"strings"
	"testing"
)

func TestDyslexiaHTMLContainer(t *testing.T) {
	s := New()
	got := s.DyslexiaHTML("plain", DefaultDyslexiaPrefs())
	for _, want := range []string{
		`class="dyslexia-text"`,
		"font-family: 'OpenDyslexic', Arial, sans-serif;",
		"font-size: 16px;",
		"line-height: 1.8;",
		"letter-spacing: 0.15em;",
		"max-width: 600px;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDyslexiaHTMLSyllablesOnly(t *testing.T) {
	s := New()
	got := s.DyslexiaHTML("hello world", DyslexiaPrefs{FontSize: 16, LineHeight: 1.8, LetterSpacing: 0.15, ShowSyllables: true})
	if !strings.Contains(got, ">hel-lo world</div>") {
		t.Errorf("syllables-only output = %q, want hyphenated text with no spans", got)
	}
}

func TestDyslexiaHTMLPOSColors(t *testing.T) {
	s := New()
	got := s.DyslexiaHTML("you run", DyslexiaPrefs{FontSize: 16, LineHeight: 1.8, LetterSpacing: 0.15, ShowPOSColors: true})
	if !strings.Contains(got, `<span style="color: #9933cc">you</span>`) {
		t.Errorf("output missing pronoun span:\n%s", got)
	}
	if !strings.Contains(got, `<span style="color: #0066cc">run</span>`) {
		t.Errorf("output missing default-noun span:\n%s", got)
	}
}

func TestDyslexiaHTMLBionic(t *testing.T) {
	s := New()
	got := s.DyslexiaHTML("go hello", DyslexiaPrefs{FontSize: 16, LineHeight: 1.8, LetterSpacing: 0.15, BionicReading: true})
	// Short words are fully bolded; longer words bold their leading half.
	if !strings.Contains(got, "<b>go</b> <b>hel</b>lo") {
		t.Errorf("bionic output = %q, want <b>go</b> <b>hel</b>lo", got)
	}
}

func TestDyslexiaHTMLBionicOverSyllables(t *testing.T) {
	s := New()
	got := s.DyslexiaHTML("hello", DyslexiaPrefs{FontSize: 16, LineHeight: 1.8, LetterSpacing: 0.15, ShowSyllables: true, BionicReading: true})
	// Hyphenation splits the word before bolding sees it.
	if !strings.Contains(got, "<b>hel</b>-<b>lo</b>") {
		t.Errorf("output = %q, want <b>hel</b>-<b>lo</b>", got)
	}
}

func TestDyslexiaHTMLBionicOverSpans(t *testing.T) {
	s := New()
	got := s.DyslexiaHTML("you", DyslexiaPrefs{FontSize: 16, LineHeight: 1.8, LetterSpacing: 0.15, ShowPOSColors: true, BionicReading: true})
	// Bionic bolding runs over the span markup itself, tag words included.
	if !strings.Contains(got, "<<b>sp</b>an") {
		t.Errorf("output = %q, want span tag words bolded", got)
	}
	if !strings.Contains(got, "<b>you</b>") {
		t.Errorf("output = %q, want the word itself bolded", got)
	}
}

func TestDyslexiaHTMLCustomContainer(t *testing.T) {
	s := New()
	got := s.DyslexiaHTML("text", DyslexiaPrefs{FontSize: 20, LineHeight: 2, LetterSpacing: 0.25})
	for _, want := range []string{"font-size: 20px;", "line-height: 2;", "letter-spacing: 0.25em;"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

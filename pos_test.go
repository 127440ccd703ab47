package accessai

import "testing"

func TestPOSTag(t *testing.T) {
	s := New()
	tests := []struct {
		word string
		want PosTag
	}{
		{"hello", PosInterjection},
		{"HELLO", PosInterjection},
		{"are", PosVerb},
		{"you", PosPronoun},
		{"how", PosAdverb},
		{"the", PosDeterminer},
		{"and", PosConjunction},
		{"in", PosPreposition},
		{"medical", PosAdjective},
		{"zebra", PosNoun},
		{"", PosNoun},
	}
	for _, tt := range tests {
		if got := s.POSTag(tt.word); got != tt.want {
			t.Errorf("POSTag(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestColorFor(t *testing.T) {
	s := New()
	if got := s.ColorFor(PosVerb); got != "#cc0000" {
		t.Errorf("ColorFor(verb) = %q, want #cc0000", got)
	}
	if got := s.ColorFor(PosTag("particle")); got != "#000000" {
		t.Errorf("ColorFor(unknown) = %q, want #000000", got)
	}
}

func TestPOSColors(t *testing.T) {
	s := New()
	got := s.POSColors("Hello, you!")
	if len(got) != 2 {
		t.Fatalf("POSColors returned %d entries, want 2", len(got))
	}
	// The display word keeps its punctuation; the tag lookup does not.
	if got[0].Word != "Hello," || got[0].POS != PosInterjection || got[0].Color != "#cc00cc" {
		t.Errorf("POSColors[0] = %+v, want word Hello, tagged interjection #cc00cc", got[0])
	}
	if got[1].Word != "you!" || got[1].POS != PosPronoun || got[1].Color != "#9933cc" {
		t.Errorf("POSColors[1] = %+v, want word you! tagged pronoun #9933cc", got[1])
	}
}

func TestPOSColorsEmpty(t *testing.T) {
	s := New()
	if got := s.POSColors("   "); len(got) != 0 {
		t.Errorf("POSColors(blank) returned %d entries, want 0", len(got))
	}
}

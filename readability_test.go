package accessai

import (
	"strings"
	"testing"
)

// sentenceOf builds a single sentence with exactly n distinct words.
func sentenceOf(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "w" + strings.Repeat("x", i)
	}
	return strings.Join(words, " ") + "."
}

func TestAnalyzeReadabilityTiers(t *testing.T) {
	s := New()
	tests := []struct {
		name       string
		text       string
		difficulty string
		level      string
		grade      float64
	}{
		{"short sentence", "Hello there.", "easy", "3rd grade", 3.2},
		{"exactly ten words", sentenceOf(10), "easy", "3rd grade", 3.2},
		{"eleven words", sentenceOf(11), "medium", "7th grade", 7.2},
		{"exactly fifteen words", sentenceOf(15), "medium", "7th grade", 7.2},
		{"sixteen words", sentenceOf(16), "hard", "10th grade", 10.2},
	}
	for _, tt := range tests {
		got := s.AnalyzeReadability(tt.text)
		if got.ReadingDifficulty != tt.difficulty {
			t.Errorf("%s: difficulty = %q, want %q", tt.name, got.ReadingDifficulty, tt.difficulty)
		}
		if got.ReadingLevel != tt.level {
			t.Errorf("%s: level = %q, want %q", tt.name, got.ReadingLevel, tt.level)
		}
		if got.FleschKincaidGrade != tt.grade {
			t.Errorf("%s: grade = %v, want %v", tt.name, got.FleschKincaidGrade, tt.grade)
		}
	}
}

func TestAnalyzeReadabilityCounts(t *testing.T) {
	s := New()
	got := s.AnalyzeReadability("Hello hello world. World again!")
	if got.TotalWords != 5 {
		t.Errorf("TotalWords = %d, want 5", got.TotalWords)
	}
	if got.UniqueWords != 3 {
		t.Errorf("UniqueWords = %d, want 3", got.UniqueWords)
	}
	// 5 words at 200 wpm rounds up to 2 seconds.
	if got.ReadingTimeSec != 2 {
		t.Errorf("ReadingTimeSec = %d, want 2", got.ReadingTimeSec)
	}
}

func TestAnalyzeReadabilityMultipleSentences(t *testing.T) {
	s := New()
	// 22 words over 2 sentences averages 11, landing in medium.
	text := sentenceOf(11) + " " + sentenceOf(11)
	got := s.AnalyzeReadability(text)
	if got.ReadingDifficulty != "medium" {
		t.Errorf("difficulty = %q, want medium", got.ReadingDifficulty)
	}
}

func TestAnalyzeReadabilityEmpty(t *testing.T) {
	s := New()
	got := s.AnalyzeReadability("")
	if got.ReadingDifficulty != "easy" || got.TotalWords != 0 || got.ReadingTimeSec != 0 {
		t.Errorf("empty text = %+v, want easy with zero counts", got)
	}
}

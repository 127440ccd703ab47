package accessai

import (
	"math"
	"regexp"
	"strings"
)

// reSentenceEnd splits text on runs of sentence-ending punctuation.
var reSentenceEnd = regexp.MustCompile(`[.!?]+`)

// Readability summarizes the reading difficulty of a text.
type Readability struct {
	// ReadingDifficulty is one of easy, medium, hard.
	ReadingDifficulty string `json:"reading_difficulty"`
	// ReadingLevel is the school-grade label for the difficulty.
	ReadingLevel string `json:"reading_level"`
	// FleschKincaidGrade is the grade number plus a fixed 0.2 offset.
	// It is a placeholder, not a real Flesch-Kincaid computation.
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	// ReadingTimeSec estimates reading time at 200 words per minute.
	ReadingTimeSec int `json:"estimated_reading_time_sec"`
	// UniqueWords counts distinct tokenized words.
	UniqueWords int `json:"unique_words"`
	// TotalWords counts all tokenized words.
	TotalWords int `json:"total_words"`
}

// AnalyzeReadability scores text by average words per sentence.
// Averages above 15 are hard, above 10 medium, anything else easy;
// both boundaries resolve to the lower tier.
func (s *Service) AnalyzeReadability(text string) Readability {
	words := Tokenize(text)

	sentences := 0
	for _, seg := range reSentenceEnd.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			sentences++
		}
	}
	if sentences < 1 {
		sentences = 1
	}
	avg := float64(len(words)) / float64(sentences)

	difficulty, level, grade := "easy", "3rd grade", 3
	switch {
	case avg > 15:
		difficulty, level, grade = "hard", "10th grade", 10
	case avg > 10:
		difficulty, level, grade = "medium", "7th grade", 7
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	return Readability{
		ReadingDifficulty:  difficulty,
		ReadingLevel:       level,
		FleschKincaidGrade: float64(grade) + 0.2,
		ReadingTimeSec:     int(math.Ceil(float64(len(words)) / 200 * 60)),
		UniqueWords:        len(unique),
		TotalWords:         len(words),
	}
}

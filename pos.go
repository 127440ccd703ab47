package accessai

import (
	"regexp"
	"strings"
)

// defaultPosColor is returned for any tag missing from the color table.
const defaultPosColor = "#000000"

// reNonWord strips everything that is not a word character.
var reNonWord = regexp.MustCompile(`[^\w]`)

// POSTag returns the grammatical category for word via case-insensitive
// dictionary lookup. Unknown words resolve to PosNoun, so the function is
// total.
func (s *Service) POSTag(word string) PosTag {
	if tag, ok := s.posDict[strings.ToLower(word)]; ok {
		return tag
	}
	return PosNoun
}

// ColorFor returns the display color for tag, falling back to black for
// any tag outside the fixed color table.
func (s *Service) ColorFor(tag PosTag) string {
	if c, ok := s.posColors[tag]; ok {
		return c
	}
	return defaultPosColor
}

// WordColor is one display word with its grammatical category and color.
type WordColor struct {
	// Word keeps the original casing and any attached punctuation.
	Word string `json:"word"`
	// POS is the category of the word with non-word characters stripped.
	POS PosTag `json:"pos"`
	// Color is the display color for POS.
	Color string `json:"color"`
}

// POSColors tags every whitespace-separated word of text. The Word field
// keeps the original spelling, punctuation included, while the tag lookup
// strips non-word characters first. Display text and tagging deliberately
// disagree here.
func (s *Service) POSColors(text string) []WordColor {
	words := strings.Fields(text)
	out := make([]WordColor, 0, len(words))
	for _, w := range words {
		tag := s.POSTag(reNonWord.ReplaceAllString(w, ""))
		out = append(out, WordColor{Word: w, POS: tag, Color: s.ColorFor(tag)})
	}
	return out
}

package accessai

import (
	"fmt"
	"strings"
)

// signDefaultKey is the fallback entry present in every variant table.
const signDefaultKey = "default"

// SignVideo describes one sign-language video asset.
type SignVideo struct {
	// URL points at the (mock) video asset.
	URL string
	// DurationSec is the clip length in seconds.
	DurationSec float64
	// Category groups the word (greetings, social, medical, ...).
	Category string
	// Difficulty is easy, medium, or hard.
	Difficulty string
}

// signTable is one variant's word→video table. words preserves insertion
// order (excluding the default entry) so vocabulary enumeration is stable.
type signTable struct {
	words   []string
	entries map[string]SignVideo
}

func newSignTable() *signTable {
	return &signTable{entries: make(map[string]SignVideo)}
}

func (t *signTable) add(word string, v SignVideo) {
	t.words = append(t.words, word)
	t.entries[word] = v
}

func (t *signTable) setDefault(v SignVideo) {
	t.entries[signDefaultKey] = v
}

// signTable selects the table for variant, defaulting to ISL when the
// variant is unrecognized.
func (s *Service) signTable(variant SignVariant) *signTable {
	if t, ok := s.signDBs[variant]; ok {
		return t
	}
	return s.signDBs[VariantISL]
}

// SignVideo returns the video descriptor for word in the given variant.
// The word is lower-cased and trimmed first. Lookups never fail: an
// absent word degrades to the variant's default (fingerspelling) entry,
// and an unrecognized variant degrades to ISL.
func (s *Service) SignVideo(word string, variant SignVariant) SignVideo {
	t := s.signTable(variant)
	if v, ok := t.entries[strings.TrimSpace(strings.ToLower(word))]; ok {
		return v
	}
	return t.entries[signDefaultKey]
}

// VocabularyCount returns the number of words in the variant's table,
// excluding the default entry.
func (s *Service) VocabularyCount(variant SignVariant) int {
	return len(s.signTable(variant).words)
}

// VocabularyFilters narrows a vocabulary enumeration. Zero values mean
// no filtering; both filters are ANDed.
type VocabularyFilters struct {
	// Category requires an exact category match.
	Category string
	// Search requires a case-insensitive substring match on the word.
	Search string
}

// VocabularyItem is one enumerated vocabulary entry.
type VocabularyItem struct {
	// ID is the 1-based position in the unfiltered enumeration. It is
	// derived at call time and never stored.
	ID int `json:"id"`
	// Word is the table key.
	Word string `json:"word"`
	// VideoURL is the variant's video asset for the word.
	VideoURL string `json:"video_url"`
	// DurationSec is the clip length in seconds.
	DurationSec float64 `json:"duration_sec"`
	// Category groups the word.
	Category string `json:"category"`
	// Difficulty is easy, medium, or hard.
	Difficulty string `json:"difficulty"`
	// AlternateVariants maps ASL and BSL to their URL for the same word,
	// nil when the variant lacks it.
	AlternateVariants map[SignVariant]*string `json:"alternate_variants"`
	// UsageContext is a templated usage hint.
	UsageContext string `json:"usage_context"`
}

// Vocabulary enumerates every non-default word of the variant's table in
// table order, then applies the filters. IDs are assigned before
// filtering, so a filtered result keeps the ids of the full enumeration.
func (s *Service) Vocabulary(variant SignVariant, filters VocabularyFilters) []VocabularyItem {
	t := s.signTable(variant)
	search := strings.ToLower(filters.Search)

	items := make([]VocabularyItem, 0, len(t.words))
	for i, word := range t.words {
		entry := t.entries[word]
		if filters.Category != "" && entry.Category != filters.Category {
			continue
		}
		if search != "" && !strings.Contains(word, search) {
			continue
		}
		items = append(items, VocabularyItem{
			ID:          i + 1,
			Word:        word,
			VideoURL:    entry.URL,
			DurationSec: entry.DurationSec,
			Category:    entry.Category,
			Difficulty:  entry.Difficulty,
			AlternateVariants: map[SignVariant]*string{
				VariantASL: s.variantURL(VariantASL, word),
				VariantBSL: s.variantURL(VariantBSL, word),
			},
			UsageContext: fmt.Sprintf("Common usage for '%s'", word),
		})
	}
	return items
}

// variantURL returns the variant's URL for word, or nil when absent.
// The default entry does not count as a match here.
func (s *Service) variantURL(variant SignVariant, word string) *string {
	if v, ok := s.signDBs[variant].entries[word]; ok {
		return &v.URL
	}
	return nil
}

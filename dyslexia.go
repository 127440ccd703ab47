package accessai

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DyslexiaPrefs controls dyslexia-friendly formatting.
type DyslexiaPrefs struct {
	// FontSize is the container font size in px.
	FontSize int
	// LineHeight is the container line height.
	LineHeight float64
	// LetterSpacing is the container letter spacing in em.
	LetterSpacing float64
	// ShowSyllables hyphenates known words before any other step.
	ShowSyllables bool
	// ShowPOSColors wraps each word in a colored span.
	ShowPOSColors bool
	// BionicReading bolds the leading half of every word.
	BionicReading bool
}

// DefaultDyslexiaPrefs returns the documented preference defaults.
func DefaultDyslexiaPrefs() DyslexiaPrefs {
	return DyslexiaPrefs{
		FontSize:      16,
		LineHeight:    1.8,
		LetterSpacing: 0.15,
		ShowPOSColors: true,
	}
}

// reBionicWord matches each word for bionic-reading bolding.
var reBionicWord = regexp.MustCompile(`\b\w+\b`)

// DyslexiaHTML renders text as a dyslexia-friendly markup string.
//
// The step order is significant: syllabification runs first, POS coloring
// re-derives tags over the already-syllabified text and rejoins the words
// with single spaces, and bionic bolding runs last over the working string
// as a whole — including any span markup the coloring step produced, whose
// tag and attribute words get bolded like everything else. That last quirk
// is part of the contract.
//
// The output is a display string. User text is embedded unescaped, which
// is a known injection risk for callers that treat it as live markup.
func (s *Service) DyslexiaHTML(text string, prefs DyslexiaPrefs) string {
	formatted := text

	if prefs.ShowSyllables {
		formatted = s.Syllabify(formatted)
	}

	if prefs.ShowPOSColors {
		words := s.POSColors(formatted)
		spans := make([]string, len(words))
		for i, w := range words {
			spans[i] = fmt.Sprintf(`<span style="color: %s">%s</span>`, w.Color, w.Word)
		}
		formatted = strings.Join(spans, " ")
	}

	if prefs.BionicReading {
		formatted = reBionicWord.ReplaceAllStringFunc(formatted, func(word string) string {
			if len(word) <= 3 {
				return "<b>" + word + "</b>"
			}
			mid := (len(word) + 1) / 2
			return "<b>" + word[:mid] + "</b>" + word[mid:]
		})
	}

	return fmt.Sprintf(`<div class="dyslexia-text" style="
    font-family: 'OpenDyslexic', Arial, sans-serif;
    font-size: %dpx;
    line-height: %s;
    letter-spacing: %sem;
    max-width: 600px;
  ">%s</div>`,
		prefs.FontSize,
		formatFloat(prefs.LineHeight),
		formatFloat(prefs.LetterSpacing),
		formatted)
}

// formatFloat renders f without trailing zeros, e.g. 1.8 → "1.8".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

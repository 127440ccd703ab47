package accessai

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// processTargetLanguages is the fixed translation target list for the
// process-input use case; the source language is skipped at call time.
var processTargetLanguages = []string{"hi", "es", "ta", "te", "kn", "zh", "ja", "fr"}

// AccessibilityPrefs carries the caller's accessibility preferences for
// ProcessInput. Zero values take the documented defaults.
type AccessibilityPrefs struct {
	SignLanguageVariant SignVariant
	FontSize            int
	HighContrast        bool
	BionicReading       bool
	ReadingSpeed        float64
}

// ProcessRequest is a validated process-input request.
type ProcessRequest struct {
	// Text is the sanitized input text.
	Text string
	// UserType is deaf, speech, or dyslexia; defaults to deaf.
	UserType string
	// Language is the source language code; defaults to en.
	Language string
	// Prefs are the accessibility preferences.
	Prefs AccessibilityPrefs
}

// SignVideoRef is one per-token video in the sign-language sequence.
type SignVideoRef struct {
	Word        string  `json:"word"`
	URL         string  `json:"url"`
	DurationSec float64 `json:"duration_sec"`
	Difficulty  string  `json:"difficulty"`
}

// SignLanguageResult is the sign-language branch of a process result.
type SignLanguageResult struct {
	Variant                 SignVariant    `json:"variant"`
	Videos                  []SignVideoRef `json:"videos"`
	FullSequenceURL         string         `json:"full_sequence_url"`
	FullSequenceDurationSec float64        `json:"full_sequence_duration_sec"`
	Captions                string         `json:"captions"`
}

// FormattedTextResult is the dyslexia-friendly branch of a process result.
type FormattedTextResult struct {
	Original             string      `json:"original"`
	DyslexiaFriendlyHTML string      `json:"dyslexia_friendly_html"`
	Syllabified          string      `json:"syllabified"`
	ColorCodedPOS        []WordColor `json:"color_coded_pos"`
	ReadingDifficulty    string      `json:"reading_difficulty"`
	ReadingLevel         string      `json:"reading_level"`
	ReadingTimeSec       int         `json:"estimated_reading_time_sec"`
}

// AudioVariant is a gendered alternative to the default rendition.
type AudioVariant struct {
	Language string  `json:"language"`
	Gender   string  `json:"gender"`
	Speed    float64 `json:"speed"`
	URL      string  `json:"url"`
}

// AudioResult bundles the default rendition with its variants.
type AudioResult struct {
	Default  Audio          `json:"default"`
	Variants []AudioVariant `json:"variants"`
}

// TranslationResult is one target-language translation with its audio.
type TranslationResult struct {
	Text         string `json:"text"`
	AudioURL     string `json:"audio_url"`
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name"`
}

// AccessibilityFeatures reports the static accessibility capabilities.
type AccessibilityFeatures struct {
	WCAGCompliance       string `json:"wcag_compliance"`
	KeyboardNavigable    bool   `json:"keyboard_navigable"`
	ScreenReaderFriendly bool   `json:"screen_reader_friendly"`
	HighContrastReady    bool   `json:"high_contrast_ready"`
	FocusVisible         bool   `json:"focus_visible"`
}

// ProcessMetadata carries per-request bookkeeping.
type ProcessMetadata struct {
	RequestID       string `json:"request_id"`
	Timestamp       string `json:"timestamp"`
	Version         string `json:"version"`
	CacheHit        bool   `json:"cache_hit"`
	CacheTTLSeconds int    `json:"cache_ttl_seconds"`
}

// ProcessResult is the aggregate multi-modal response for one input text.
type ProcessResult struct {
	InputText       string                       `json:"input_text"`
	ProcessedTimeMS int64                        `json:"processed_time_ms"`
	SignLanguage    SignLanguageResult           `json:"sign_language"`
	FormattedText   FormattedTextResult          `json:"formatted_text"`
	Audio           AudioResult                  `json:"audio"`
	Translations    map[string]TranslationResult `json:"translations"`
	Features        AccessibilityFeatures        `json:"accessibility_features"`
	Metadata        ProcessMetadata              `json:"metadata"`
}

// ProcessInput runs the whole pipeline over one request: per-token sign
// videos, dyslexia formatting, readability, three audio renditions, and
// translations into every fixed target language except the source. The
// branches share only the tokenized input and run in one pass; the
// recorded processing time covers the aggregation itself.
func (s *Service) ProcessInput(req ProcessRequest) *ProcessResult {
	start := time.Now()

	language := req.Language
	if language == "" {
		language = "en"
	}
	variant := req.Prefs.SignLanguageVariant
	if variant == "" {
		variant = VariantISL
	}
	fontSize := req.Prefs.FontSize
	if fontSize == 0 {
		fontSize = 16
	}
	readingSpeed := req.Prefs.ReadingSpeed
	if readingSpeed == 0 {
		readingSpeed = 1.0
	}

	words := Tokenize(req.Text)

	videos := make([]SignVideoRef, 0, len(words))
	var totalDuration float64
	for _, word := range words {
		v := s.SignVideo(word, variant)
		videos = append(videos, SignVideoRef{
			Word:        word,
			URL:         v.URL,
			DurationSec: v.DurationSec,
			Difficulty:  v.Difficulty,
		})
		totalDuration += v.DurationSec
	}
	sequenceID := strings.Split(RequestID(), "_")[2]

	posColored := s.POSColors(req.Text)
	syllabified := s.Syllabify(req.Text)
	readability := s.AnalyzeReadability(req.Text)
	dyslexiaHTML := s.DyslexiaHTML(req.Text, DyslexiaPrefs{
		FontSize:      fontSize,
		LineHeight:    1.8,
		LetterSpacing: 0.15,
		ShowSyllables: true,
		ShowPOSColors: true,
		BionicReading: req.Prefs.BionicReading,
	})

	defaultAudio := s.SynthesizeAudio(req.Text, language, AudioOptions{Gender: "neutral", Speed: readingSpeed})
	variants := make([]AudioVariant, 0, 2)
	for _, gender := range []string{"female", "male"} {
		a := s.SynthesizeAudio(req.Text, language, AudioOptions{Gender: gender, Speed: readingSpeed})
		variants = append(variants, AudioVariant{Language: language, Gender: a.Gender, Speed: a.Speed, URL: a.URL})
	}

	translations := make(map[string]TranslationResult, len(processTargetLanguages))
	for _, target := range processTargetLanguages {
		if target == language {
			continue
		}
		translated := s.Translate(req.Text, target)
		name := target
		if lang := s.LanguageByCode(target); lang != nil {
			name = lang.NativeName
		}
		translations[target] = TranslationResult{
			Text:         translated,
			AudioURL:     s.SynthesizeAudio(translated, target, AudioOptions{}).URL,
			LanguageCode: target,
			LanguageName: name,
		}
	}

	return &ProcessResult{
		InputText:       req.Text,
		ProcessedTimeMS: time.Since(start).Milliseconds(),
		SignLanguage: SignLanguageResult{
			Variant:                 variant,
			Videos:                  videos,
			FullSequenceURL:         fmt.Sprintf("%s/sequences/%s/%s.mp4", CDNBaseURL, strings.ToLower(string(variant)), sequenceID),
			FullSequenceDurationSec: math.Round(totalDuration*10) / 10,
			Captions:                strings.Join(words, " → "),
		},
		FormattedText: FormattedTextResult{
			Original:             req.Text,
			DyslexiaFriendlyHTML: dyslexiaHTML,
			Syllabified:          syllabified,
			ColorCodedPOS:        posColored,
			ReadingDifficulty:    readability.ReadingDifficulty,
			ReadingLevel:         readability.ReadingLevel,
			ReadingTimeSec:       readability.ReadingTimeSec,
		},
		Audio: AudioResult{
			Default:  defaultAudio,
			Variants: variants,
		},
		Translations: translations,
		Features: AccessibilityFeatures{
			WCAGCompliance:       WCAGLevel,
			KeyboardNavigable:    true,
			ScreenReaderFriendly: true,
			HighContrastReady:    req.Prefs.HighContrast,
			FocusVisible:         true,
		},
		Metadata: ProcessMetadata{
			RequestID:       RequestID(),
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
			Version:         "1.0",
			CacheHit:        false,
			CacheTTLSeconds: 3600,
		},
	}
}

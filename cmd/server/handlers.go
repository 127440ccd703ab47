package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	accessai "github.com/accessai/accessai"
)

// ---- JSON response types ------------------------------------------------

type healthResponse struct {
	Success   bool    `json:"success"`
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	UptimeSec float64 `json:"uptime_sec"`
}

type ttsResponse struct {
	Text        string  `json:"text"`
	Language    string  `json:"language"`
	Gender      string  `json:"gender"`
	Speed       float64 `json:"speed"`
	AudioURL    string  `json:"audio_url"`
	DurationSec int     `json:"duration_sec"`
	Format      string  `json:"format"`
	Bitrate     string  `json:"bitrate"`
	CreatedAt   string  `json:"created_at"`
}

type translationJSON struct {
	Text         string `json:"text"`
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name"`
	AudioURL     string `json:"audio_url,omitempty"`
}

type translateResponse struct {
	SourceText     string                     `json:"source_text"`
	SourceLanguage string                     `json:"source_language"`
	Translations   map[string]translationJSON `json:"translations"`
	Timestamp      string                     `json:"timestamp"`
}

type vocabularyResponse struct {
	Variant       string                    `json:"variant"`
	TotalCount    int                       `json:"total_count"`
	ReturnedCount int                       `json:"returned_count"`
	Vocabulary    []accessai.VocabularyItem `json:"vocabulary"`
}

type complexityJSON struct {
	ReadingLevel       string   `json:"reading_level"`
	FleschKincaidGrade float64  `json:"flesch_kincaid_grade"`
	ReadingTimeSec     int      `json:"estimated_reading_time_sec"`
	UniqueWords        int      `json:"unique_words"`
	ComplexWords       []string `json:"complex_words"`
}

type dyslexiaResponse struct {
	Original           string               `json:"original"`
	FormattedHTML      string               `json:"formatted_html"`
	Syllabified        string               `json:"syllabified"`
	ComplexityAnalysis complexityJSON       `json:"complexity_analysis"`
	PartsOfSpeech      []accessai.WordColor `json:"parts_of_speech"`
}

type languageJSON struct {
	Code                 string                 `json:"code"`
	Name                 string                 `json:"name"`
	NativeName           string                 `json:"native_name"`
	SupportedTTS         bool                   `json:"supported_tts"`
	SupportedTranslation bool                   `json:"supported_translation"`
	SignLanguage         bool                   `json:"sign_language_available"`
	SignVariants         []accessai.SignVariant `json:"sign_language_variants"`
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UptimeSec: time.Since(s.started).Seconds(),
	})
}

func (s *server) handleProcessInput(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var req processInputRequest
	if !s.decodeJSON(w, r, &req) || !s.validateProcessInput(w, &req) {
		return
	}

	preq := accessai.ProcessRequest{
		Text:     req.Text,
		UserType: req.UserType,
		Language: req.Language,
	}
	if p := req.AccessibilityPreferences; p != nil {
		preq.Prefs = accessai.AccessibilityPrefs{
			SignLanguageVariant: accessai.SignVariant(p.SignLanguageVariant),
			HighContrast:        p.HighContrast,
			BionicReading:       p.BionicReading,
		}
		if p.FontSize != nil {
			preq.Prefs.FontSize = *p.FontSize
		}
		if p.ReadingSpeed != nil {
			preq.Prefs.ReadingSpeed = *p.ReadingSpeed
		}
	}

	s.writeData(w, http.StatusOK, s.svc.ProcessInput(preq))
}

func (s *server) handleTextToSpeech(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var req ttsRequest
	if !s.decodeJSON(w, r, &req) || !s.validateTextToSpeech(w, &req) {
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}
	opts := accessai.AudioOptions{Gender: req.Gender, Format: req.Format}
	if req.Speed != nil {
		opts.Speed = *req.Speed
	}

	audio := s.svc.SynthesizeAudio(req.Text, language, opts)
	s.writeData(w, http.StatusOK, ttsResponse{
		Text:        req.Text,
		Language:    language,
		Gender:      audio.Gender,
		Speed:       audio.Speed,
		AudioURL:    audio.URL,
		DurationSec: audio.DurationSec,
		Format:      audio.Format,
		Bitrate:     audio.Bitrate,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var req translateRequest
	if !s.decodeJSON(w, r, &req) || !s.validateTranslate(w, &req) {
		return
	}

	source := req.SourceLanguage
	if source == "" {
		source = "en"
	}

	translations := make(map[string]translationJSON, len(req.TargetLanguages))
	for _, target := range req.TargetLanguages {
		name := target
		if lang := s.svc.LanguageByCode(target); lang != nil {
			name = lang.NativeName
		}
		entry := translationJSON{
			Text:         s.svc.Translate(req.Text, target),
			LanguageCode: target,
			LanguageName: name,
		}
		if req.IncludeAudio {
			entry.AudioURL = s.svc.SynthesizeAudio(entry.Text, target, accessai.AudioOptions{}).URL
		}
		translations[target] = entry
	}

	s.writeData(w, http.StatusOK, translateResponse{
		SourceText:     req.Text,
		SourceLanguage: source,
		Translations:   translations,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *server) handleSampleQueries(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}
	key := s.cache.Key("sample-queries")
	if cached, ok := s.cache.Get(key); ok {
		s.writeData(w, http.StatusOK, cached)
		return
	}
	queries := s.svc.SampleQueriesAll()
	s.cache.Set(key, queries)
	s.writeData(w, http.StatusOK, queries)
}

func (s *server) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	variant := q.Get("variant")
	if variant == "" {
		variant = string(accessai.VariantISL)
	}
	category := q.Get("category")
	search := q.Get("search")
	limit := queryInt(q.Get("limit"), 50)
	offset := queryInt(q.Get("offset"), 0)

	key := s.cache.Key("vocabulary", variant, category, search,
		strconv.Itoa(limit), strconv.Itoa(offset))
	if cached, ok := s.cache.Get(key); ok {
		s.writeData(w, http.StatusOK, cached)
		return
	}

	vocabulary := s.svc.Vocabulary(accessai.SignVariant(variant), accessai.VocabularyFilters{
		Category: category,
		Search:   search,
	})
	page := paginate(vocabulary, offset, limit)

	resp := vocabularyResponse{
		Variant: variant,
		// total_count is the unfiltered table size; returned_count is the
		// filtered, paginated slice. The two deliberately disagree.
		TotalCount:    s.svc.VocabularyCount(accessai.SignVariant(variant)),
		ReturnedCount: len(page),
		Vocabulary:    page,
	}
	s.cache.Set(key, resp)
	s.writeData(w, http.StatusOK, resp)
}

func (s *server) handleDyslexiaFormat(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var req dyslexiaRequest
	if !s.decodeJSON(w, r, &req) || !s.validateDyslexiaFormat(w, &req) {
		return
	}

	prefs := accessai.DyslexiaPrefs{
		FontSize:      16,
		LineHeight:    1.8,
		LetterSpacing: 0.15,
		ShowSyllables: true,
		ShowPOSColors: true,
	}
	if p := req.Preferences; p != nil {
		if p.FontSize != nil {
			prefs.FontSize = *p.FontSize
		}
		if p.ShowSyllables != nil {
			prefs.ShowSyllables = *p.ShowSyllables
		}
		if p.ShowPOSColors != nil {
			prefs.ShowPOSColors = *p.ShowPOSColors
		}
		if p.LineHeight != nil {
			prefs.LineHeight = *p.LineHeight
		}
		if p.LetterSpacing != nil {
			prefs.LetterSpacing = *p.LetterSpacing
		}
		prefs.BionicReading = p.BionicReading
	}

	readability := s.svc.AnalyzeReadability(req.Text)

	complexWords := make([]string, 0)
	for _, word := range strings.Fields(req.Text) {
		if utf8.RuneCountInString(word) > 8 {
			complexWords = append(complexWords, word)
		}
	}

	s.writeData(w, http.StatusOK, dyslexiaResponse{
		Original:      req.Text,
		FormattedHTML: s.svc.DyslexiaHTML(req.Text, prefs),
		Syllabified:   s.svc.Syllabify(req.Text),
		ComplexityAnalysis: complexityJSON{
			ReadingLevel:       readability.ReadingLevel,
			FleschKincaidGrade: readability.FleschKincaidGrade,
			ReadingTimeSec:     readability.ReadingTimeSec,
			UniqueWords:        readability.UniqueWords,
			ComplexWords:       complexWords,
		},
		PartsOfSpeech: s.svc.POSColors(req.Text),
	})
}

func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}
	languages := s.svc.Languages()
	out := make([]languageJSON, 0, len(languages))
	for _, lang := range languages {
		variants := lang.SignVariants
		if variants == nil {
			variants = []accessai.SignVariant{}
		}
		out = append(out, languageJSON{
			Code:                 lang.Code,
			Name:                 lang.Name,
			NativeName:           lang.NativeName,
			SupportedTTS:         lang.TTS,
			SupportedTranslation: lang.Translation,
			SignLanguage:         lang.SignLanguage,
			SignVariants:         variants,
		})
	}
	s.writeData(w, http.StatusOK, map[string]any{"languages": out})
}

func (s *server) handleAccessibilityStatement(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}
	s.writeData(w, http.StatusOK, map[string]any{
		"wcag_level":            accessai.WCAGLevel,
		"target_level":          accessai.TargetWCAGLevel,
		"compliance_percentage": 92,
		"tested_with":           []string{"NVDA", "JAWS", "Chrome DevTools", "Lighthouse"},
		"features": []string{
			"Keyboard navigation",
			"Screen reader support",
			"High contrast mode",
			"Adjustable font size",
			"Captions for all audio",
			"Sign language support",
			"Dyslexia-friendly formatting",
			"Multi-language support",
			"Text-to-speech",
			"Color-coded text",
		},
		"known_issues": []string{},
		"accessibility_statement": "AccessAI is committed to ensuring digital accessibility for people with disabilities. " +
			"We are continually improving the user experience for everyone and applying the relevant accessibility standards. " +
			"This application aims to conform to WCAG 2.1 Level AA standards.",
		"last_reviewed": "2025-11-08",
	})
}

// ---- helpers ------------------------------------------------------------

// queryInt parses a query parameter, falling back to def on absence or
// garbage, and clamping negatives to zero.
func queryInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// paginate slices items at [offset, offset+limit), clamped to bounds.
func paginate(items []accessai.VocabularyItem, offset, limit int) []accessai.VocabularyItem {
	if offset >= len(items) {
		return []accessai.VocabularyItem{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

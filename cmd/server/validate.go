package main

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	accessai "github.com/accessai/accessai"
)

// Request bodies. Optional numeric and boolean fields whose defaults are
// not the zero value use pointers so that an absent field and an explicit
// zero can be told apart.

type processInputRequest struct {
	Text                     string        `json:"text"`
	UserType                 string        `json:"user_type"`
	Language                 string        `json:"language"`
	AccessibilityPreferences *processPrefs `json:"accessibility_preferences"`
}

type processPrefs struct {
	SignLanguageVariant string   `json:"sign_language_variant"`
	FontSize            *int     `json:"font_size"`
	HighContrast        bool     `json:"high_contrast"`
	BionicReading       bool     `json:"bionic_reading"`
	ReadingSpeed        *float64 `json:"reading_speed"`
}

type ttsRequest struct {
	Text     string   `json:"text"`
	Language string   `json:"language"`
	Gender   string   `json:"gender"`
	Speed    *float64 `json:"speed"`
	Format   string   `json:"format"`
}

type translateRequest struct {
	Text            string   `json:"text"`
	SourceLanguage  string   `json:"source_language"`
	TargetLanguages []string `json:"target_languages"`
	IncludeAudio    bool     `json:"include_audio"`
}

type dyslexiaRequest struct {
	Text        string         `json:"text"`
	Preferences *dyslexiaPrefs `json:"preferences"`
}

type dyslexiaPrefs struct {
	FontSize      *int     `json:"font_size"`
	ShowSyllables *bool    `json:"show_syllables"`
	ShowPOSColors *bool    `json:"show_pos_colors"`
	BionicReading bool     `json:"bionic_reading"`
	LineHeight    *float64 `json:"line_height"`
	LetterSpacing *float64 `json:"letter_spacing"`
}

// The validation gate runs before any pipeline work: a failure here
// short-circuits the request with a 400-class envelope. Each validator
// sanitizes the text in place and reports whether the request may proceed.

func (s *server) validateProcessInput(w http.ResponseWriter, req *processInputRequest) bool {
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
			"Text field is required", "Provide 'text' field in request body")
		return false
	}

	req.Text = accessai.SanitizeText(req.Text)
	if !s.validateTextLength(w, req.Text) {
		return false
	}

	if req.UserType != "" && !accessai.ValidUserType(req.UserType) {
		s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
			"Invalid user type",
			"User type must be one of: "+strings.Join(accessai.UserTypes, ", "))
		return false
	}

	if !s.validateLanguage(w, req.Language, "Unsupported language") {
		return false
	}

	if req.AccessibilityPreferences != nil {
		if v := req.AccessibilityPreferences.SignLanguageVariant; v != "" && !accessai.ValidSignVariant(v) {
			s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
				"Invalid sign language variant",
				"Variant must be one of: ISL, ASL, BSL")
			return false
		}
	}
	return true
}

func (s *server) validateTextToSpeech(w http.ResponseWriter, req *ttsRequest) bool {
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
			"Text field is required", "Provide 'text' field as a string in request body")
		return false
	}
	req.Text = accessai.SanitizeText(req.Text)

	if !s.validateLanguage(w, req.Language, "Unsupported language") {
		return false
	}

	if req.Speed != nil && (*req.Speed < accessai.MinSpeechSpeed || *req.Speed > accessai.MaxSpeechSpeed) {
		s.writeError(w, http.StatusBadRequest, accessai.CodeValidationError,
			"Invalid speed value",
			fmt.Sprintf("Speed must be between %g and %g", accessai.MinSpeechSpeed, accessai.MaxSpeechSpeed))
		return false
	}

	if req.Format != "" && !accessai.ValidAudioFormat(req.Format) {
		s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
			"Invalid audio format",
			"Format must be one of: "+strings.Join(accessai.AudioFormats, ", "))
		return false
	}
	return true
}

func (s *server) validateTranslate(w http.ResponseWriter, req *translateRequest) bool {
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
			"Text field is required", "Provide 'text' field as a string in request body")
		return false
	}
	req.Text = accessai.SanitizeText(req.Text)

	if !s.validateLanguage(w, req.SourceLanguage, "Unsupported source language") {
		return false
	}
	for _, lang := range req.TargetLanguages {
		if !s.svc.SupportedLanguage(lang) {
			s.writeError(w, http.StatusBadRequest, accessai.CodeUnsupportedLanguage,
				"Unsupported target language",
				fmt.Sprintf("Language '%s' is not supported", lang))
			return false
		}
	}
	return true
}

func (s *server) validateDyslexiaFormat(w http.ResponseWriter, req *dyslexiaRequest) bool {
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
			"Text field is required", "Provide 'text' field as a string in request body")
		return false
	}
	req.Text = accessai.SanitizeText(req.Text)
	return true
}

// validateTextLength enforces the sanitized-length bounds.
func (s *server) validateTextLength(w http.ResponseWriter, text string) bool {
	n := utf8.RuneCountInString(text)
	if n < accessai.MinTextLength {
		s.writeError(w, http.StatusBadRequest, accessai.CodeValidationError,
			"Text is too short",
			fmt.Sprintf("Text must be at least %d character(s)", accessai.MinTextLength))
		return false
	}
	if n > accessai.MaxTextLength {
		s.writeError(w, http.StatusBadRequest, accessai.CodeValidationError,
			"Text is too long",
			fmt.Sprintf("Text must not exceed %d characters", accessai.MaxTextLength))
		return false
	}
	return true
}

// validateLanguage accepts an empty code (the handler applies a default)
// or any supported code.
func (s *server) validateLanguage(w http.ResponseWriter, code, message string) bool {
	if code == "" || s.svc.SupportedLanguage(code) {
		return true
	}
	s.writeError(w, http.StatusBadRequest, accessai.CodeUnsupportedLanguage,
		message, fmt.Sprintf("Language '%s' is not supported", code))
	return false
}

package accessai

// CDNBaseURL is the base URL embedded in every fabricated asset URL.
// Nothing is ever stored there; the URLs are mock contracts.
const CDNBaseURL = "https://accessai-cdn.example.com"

// WCAG conformance levels reported by the API.
const (
	WCAGLevel       = "2.1 AA"
	TargetWCAGLevel = "2.1 AAA"
)

// Input bounds enforced by the HTTP validation gate.
const (
	MinTextLength  = 1
	MaxTextLength  = 5000
	MinSpeechSpeed = 0.5
	MaxSpeechSpeed = 2.0
)

// Error codes carried in the response envelope. The set is closed.
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeUnauthorized        = "UNAUTHORIZED"
)

// PosTag is the coarse grammatical category assigned by the dictionary tagger.
type PosTag string

const (
	PosNoun         PosTag = "noun"
	PosVerb         PosTag = "verb"
	PosAdjective    PosTag = "adjective"
	PosAdverb       PosTag = "adverb"
	PosPronoun      PosTag = "pronoun"
	PosPreposition  PosTag = "preposition"
	PosConjunction  PosTag = "conjunction"
	PosInterjection PosTag = "interjection"
	PosDeterminer   PosTag = "determiner"
)

// SignVariant names a sign-language dialect. Each variant owns an
// independent word→video table.
type SignVariant string

const (
	VariantISL SignVariant = "ISL"
	VariantASL SignVariant = "ASL"
	VariantBSL SignVariant = "BSL"
)

// SignVariants lists every recognized variant.
var SignVariants = []SignVariant{VariantISL, VariantASL, VariantBSL}

// UserTypes lists the accepted user_type values.
var UserTypes = []string{"deaf", "speech", "dyslexia"}

// AudioFormats lists the accepted audio container formats.
var AudioFormats = []string{"mp3", "wav", "ogg"}

// QueryCategories partitions the sample-query catalogue.
var QueryCategories = []string{"social", "emergency", "medical", "education", "professional", "daily"}

// ValidUserType reports whether t is an accepted user type.
func ValidUserType(t string) bool {
	for _, u := range UserTypes {
		if u == t {
			return true
		}
	}
	return false
}

// ValidSignVariant reports whether v is a recognized sign-language variant.
func ValidSignVariant(v string) bool {
	for _, sv := range SignVariants {
		if string(sv) == v {
			return true
		}
	}
	return false
}

// ValidAudioFormat reports whether f is an accepted audio format.
func ValidAudioFormat(f string) bool {
	for _, af := range AudioFormats {
		if af == f {
			return true
		}
	}
	return false
}

// Language describes one supported language and its capability flags.
type Language struct {
	// Code is the ISO 639-1 language code, e.g. "en".
	Code string
	// Name is the English display name.
	Name string
	// NativeName is the name in the language's own script.
	NativeName string
	// TTS reports whether mock speech synthesis is offered.
	TTS bool
	// Translation reports whether the mock translator covers the language.
	Translation bool
	// SignLanguage reports whether any sign variant applies.
	SignLanguage bool
	// SignVariants lists the applicable variants, empty when none.
	SignVariants []SignVariant
}

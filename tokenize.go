package accessai

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// rePunct matches every character that is neither a word character nor
// whitespace. Word characters are [0-9A-Za-z_].
var rePunct = regexp.MustCompile(`[^\w\s]`)

// reTag matches anything that looks like an HTML/XML tag.
var reTag = regexp.MustCompile(`<[^>]*>`)

// reScript matches whole script blocks, including their content.
var reScript = regexp.MustCompile(`(?is)<script\b.*?</script>`)

// Tokenize splits text into lower-cased words: punctuation is stripped,
// runs of whitespace separate tokens, empty tokens are discarded.
// Tokenizing the output again returns the same sequence.
func Tokenize(text string) []string {
	cleaned := rePunct.ReplaceAllString(strings.ToLower(text), "")
	return strings.Fields(cleaned)
}

// SanitizeText strips HTML tags and script blocks from text and trims
// surrounding whitespace. This is defense in depth for the validation
// gate, not full XSS protection.
func SanitizeText(text string) string {
	sanitized := reTag.ReplaceAllString(text, "")
	sanitized = reScript.ReplaceAllString(sanitized, "")
	return strings.TrimSpace(sanitized)
}

// RequestID returns a unique request identifier of the form
// req_<unix-millis>_<8-char opaque id>.
func RequestID() string {
	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

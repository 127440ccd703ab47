package accessai

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hello, how are you doing today?", []string{"hello", "how", "are", "you", "doing", "today"}},
		{"I need emergency medical help", []string{"i", "need", "emergency", "medical", "help"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"don't stop!!!", []string{"dont", "stop"}},
		{"123 abc_def", []string{"123", "abc_def"}},
		{"", nil},
		{"?!.,", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenizeFixedPoint(t *testing.T) {
	// Tokenizing already-tokenized output must not change it.
	words := Tokenize("Hello, HOW are You doing Today?")
	again := Tokenize(strings.Join(words, " "))
	if !reflect.DeepEqual(words, again) {
		t.Errorf("Tokenize is not idempotent: %v then %v", words, again)
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"  trimmed  ", "trimmed"},
		{"<b>bold</b> text", "bold text"},
		{"<script>alert(1)</script>hello", "alert(1)hello"},
		{"<div><p>nested</p></div>", "nested"},
		{"a < b still fine", "a < b still fine"},
	}
	for _, tt := range tests {
		if got := SanitizeText(tt.in); got != tt.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequestID(t *testing.T) {
	re := regexp.MustCompile(`^req_\d+_[0-9a-f-]{8}$`)
	a, b := RequestID(), RequestID()
	if !re.MatchString(a) {
		t.Errorf("RequestID() = %q, want req_<millis>_<8 chars>", a)
	}
	if a == b {
		t.Errorf("two RequestID calls returned the same id %q", a)
	}
}

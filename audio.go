package accessai

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// AudioOptions configures mock speech synthesis. Zero values take the
// documented defaults: neutral gender, speed 1.0, mp3.
type AudioOptions struct {
	Gender string
	Speed  float64
	Format string
}

// Audio is the fabricated metadata for one synthesized rendition.
// No audio is produced or stored; the URL is a fresh opaque id per call.
type Audio struct {
	URL         string  `json:"url"`
	DurationSec int     `json:"duration_sec"`
	Format      string  `json:"format"`
	Bitrate     string  `json:"bitrate"`
	Language    string  `json:"language"`
	Gender      string  `json:"gender"`
	Speed       float64 `json:"speed"`
}

// SynthesizeAudio fabricates audio metadata for text. The duration is a
// rough half-second-per-word estimate over a raw space split — not the
// sanitized tokenizer — and every call mints a new URL.
func (s *Service) SynthesizeAudio(text, language string, opts AudioOptions) Audio {
	if opts.Gender == "" {
		opts.Gender = "neutral"
	}
	if opts.Speed == 0 {
		opts.Speed = 1.0
	}
	if opts.Format == "" {
		opts.Format = "mp3"
	}

	wordCount := len(strings.Split(text, " "))
	bitrate := "256kbps"
	if opts.Format == "mp3" {
		bitrate = "128kbps"
	}

	return Audio{
		URL:         fmt.Sprintf("%s/audio/%s/%s.%s", CDNBaseURL, language, uuid.NewString(), opts.Format),
		DurationSec: int(math.Ceil(float64(wordCount) * 0.5)),
		Format:      opts.Format,
		Bitrate:     bitrate,
		Language:    language,
		Gender:      opts.Gender,
		Speed:       opts.Speed,
	}
}

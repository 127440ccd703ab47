package accessai

import "math/rand"

// SampleQuery is one demonstration input for the platform.
type SampleQuery struct {
	ID             int    `json:"id"`
	Text           string `json:"text"`
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	ExpectedOutput string `json:"expected_output"`
}

// SampleQueries is the fixed demonstration catalogue, partitioned by
// user type.
type SampleQueries struct {
	DeafQueries           []SampleQuery `json:"deaf_queries"`
	SpeechImpairedQueries []SampleQuery `json:"speech_impaired_queries"`
	DyslexiaQueries       []SampleQuery `json:"dyslexia_queries"`
}

// SampleQueriesAll returns the whole catalogue.
func (s *Service) SampleQueriesAll() SampleQueries {
	return s.samples
}

// SampleQueriesByType returns the catalogue partition for a user type,
// or nil for an unknown type.
func (s *Service) SampleQueriesByType(userType string) []SampleQuery {
	switch userType {
	case "deaf":
		return s.samples.DeafQueries
	case "speech":
		return s.samples.SpeechImpairedQueries
	case "dyslexia":
		return s.samples.DyslexiaQueries
	}
	return nil
}

// RandomSampleQuery picks a random query for a user type, or nil when
// the type has none.
func (s *Service) RandomSampleQuery(userType string) *SampleQuery {
	queries := s.SampleQueriesByType(userType)
	if len(queries) == 0 {
		return nil
	}
	return &queries[rand.Intn(len(queries))]
}

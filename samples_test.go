package accessai

import "testing"

func TestSampleQueriesAll(t *testing.T) {
	s := New()
	got := s.SampleQueriesAll()
	if len(got.DeafQueries) != 10 || len(got.SpeechImpairedQueries) != 10 || len(got.DyslexiaQueries) != 10 {
		t.Fatalf("partition sizes = %d/%d/%d, want 10 each",
			len(got.DeafQueries), len(got.SpeechImpairedQueries), len(got.DyslexiaQueries))
	}

	// Ids run 1..30 across the partitions in order.
	next := 1
	for _, part := range [][]SampleQuery{got.DeafQueries, got.SpeechImpairedQueries, got.DyslexiaQueries} {
		for _, q := range part {
			if q.ID != next {
				t.Fatalf("query %q has id %d, want %d", q.Text, q.ID, next)
			}
			if q.Text == "" || q.Category == "" || q.Difficulty == "" || q.ExpectedOutput == "" {
				t.Errorf("query %d has empty fields: %+v", q.ID, q)
			}
			next++
		}
	}
}

func TestSampleQueriesByType(t *testing.T) {
	s := New()
	if got := s.SampleQueriesByType("deaf"); len(got) != 10 || got[0].ID != 1 {
		t.Errorf("deaf partition = %d entries starting at %d", len(got), got[0].ID)
	}
	if got := s.SampleQueriesByType("speech"); len(got) != 10 || got[0].ID != 11 {
		t.Errorf("speech partition = %d entries starting at %d", len(got), got[0].ID)
	}
	if got := s.SampleQueriesByType("dyslexia"); len(got) != 10 || got[0].ID != 21 {
		t.Errorf("dyslexia partition = %d entries starting at %d", len(got), got[0].ID)
	}
	if got := s.SampleQueriesByType("robot"); got != nil {
		t.Errorf("unknown type = %v, want nil", got)
	}
}

func TestRandomSampleQuery(t *testing.T) {
	s := New()
	got := s.RandomSampleQuery("dyslexia")
	if got == nil {
		t.Fatal("RandomSampleQuery(dyslexia) = nil")
	}
	if got.ID < 21 || got.ID > 30 {
		t.Errorf("random dyslexia query has id %d, want 21..30", got.ID)
	}
	if s.RandomSampleQuery("robot") != nil {
		t.Error("RandomSampleQuery(robot) should be nil")
	}
}

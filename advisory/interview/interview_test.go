package interview

import (
	"strings"
	"testing"
)

func TestAggregateScores(t *testing.T) {
	s := &Session{
		Questions: []SessionQuestion{
			{Question: "q1", Score: 8, Feedback: "good"},
			{Question: "q2", Score: 5, Feedback: "ok"},
			{Question: "q3", Score: 9, Feedback: "great"},
		},
	}
	s.Aggregate()

	// round(10 * (8+5+9)/3) = round(73.33) = 73
	if s.OverallScore != 73 {
		t.Errorf("OverallScore = %d, want 73", s.OverallScore)
	}
}

func TestAggregateEmptySession(t *testing.T) {
	s := &Session{}
	s.Aggregate()

	if s.OverallScore != 0 {
		t.Errorf("OverallScore = %d, want 0 for empty session", s.OverallScore)
	}
	if len(s.Strengths) != 0 || len(s.Improvements) != 0 {
		t.Error("empty session should have no strengths or improvements")
	}
}

func TestAggregateStrengthsAndImprovements(t *testing.T) {
	s := &Session{
		Questions: []SessionQuestion{
			{Question: "Tell me about a project you led from start to finish recently", Score: 9, Feedback: "good"},
			{Question: "How do you handle conflict?", Score: 4, Feedback: "weak"},
			{Question: "Unanswered question", Score: 0},
		},
	}
	s.Aggregate()

	if len(s.Strengths) != 1 {
		t.Fatalf("Strengths = %v, want exactly one", s.Strengths)
	}
	if !strings.HasPrefix(s.Strengths[0], "Strong answer for: ") || !strings.HasSuffix(s.Strengths[0], "...") {
		t.Errorf("Strength formatting wrong: %q", s.Strengths[0])
	}

	if len(s.Improvements) != 1 {
		t.Fatalf("Improvements = %v, want exactly one", s.Improvements)
	}
	if !strings.HasPrefix(s.Improvements[0], "Improve: ") {
		t.Errorf("Improvement formatting wrong: %q", s.Improvements[0])
	}
}

func TestAggregateExcerptLength(t *testing.T) {
	long := strings.Repeat("a", 80)
	s := &Session{
		Questions: []SessionQuestion{{Question: long, Score: 8, Feedback: "good"}},
	}
	s.Aggregate()

	want := "Strong answer for: " + strings.Repeat("a", 50) + "..."
	if s.Strengths[0] != want {
		t.Errorf("Strength = %q, want 50-rune excerpt", s.Strengths[0])
	}
}

func TestAggregateFeedbackThreshold(t *testing.T) {
	good := &Session{Questions: []SessionQuestion{{Question: "q", Score: 7}}}
	good.Aggregate()
	if good.Feedback != "Overall performance: Good" {
		t.Errorf("Feedback = %q, want Good at 70", good.Feedback)
	}

	bad := &Session{Questions: []SessionQuestion{{Question: "q", Score: 6}}}
	bad.Aggregate()
	if bad.Feedback != "Overall performance: Needs improvement" {
		t.Errorf("Feedback = %q, want Needs improvement below 70", bad.Feedback)
	}
}

func TestAggregateClampsOverallScore(t *testing.T) {
	s := &Session{Questions: []SessionQuestion{{Question: "q", Score: 10}}}
	s.Aggregate()
	if s.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", s.OverallScore)
	}
}

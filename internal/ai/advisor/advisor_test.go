package advisor

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/Abraxas-365/ascent/internal/ai/completion"
)

// stubCompleter returns a canned response or error for every call.
type stubCompleter struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.lastUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func unreachable() error {
	return completion.ErrRegistry.New(completion.CodeUnreachable)
}

func TestAnalyzeResumeParsesResponse(t *testing.T) {
	stub := &stubCompleter{response: `{
		"atsScore": 82,
		"strengths": ["clear structure"],
		"weaknesses": ["no metrics"],
		"missingKeywords": ["Docker"],
		"formattingIssues": [],
		"suggestions": ["quantify impact"],
		"improvedSections": {"summary": "better text"}
	}`}
	a := New(stub)

	got := a.AnalyzeResume(context.Background(), "resume text")

	if got.ATSScore != 82 {
		t.Errorf("ATSScore = %d, want 82", got.ATSScore)
	}
	if got.ImprovedSections["summary"] != "better text" {
		t.Errorf("ImprovedSections = %v", got.ImprovedSections)
	}
	if !strings.Contains(stub.lastUser, "resume text") {
		t.Error("resume text missing from prompt")
	}
}

func TestAnalyzeResumeFallbackOnGatewayError(t *testing.T) {
	a := New(&stubCompleter{err: unreachable()})

	got := a.AnalyzeResume(context.Background(), "whatever")

	if !reflect.DeepEqual(got, ResumeFallback()) {
		t.Fatalf("AnalyzeResume() = %+v, want exact fallback", got)
	}
}

func TestAnalyzeResumeClampsScore(t *testing.T) {
	a := New(&stubCompleter{response: `{"atsScore": 180}`})

	if got := a.AnalyzeResume(context.Background(), "x"); got.ATSScore != 100 {
		t.Errorf("ATSScore = %d, want clamped to 100", got.ATSScore)
	}

	a = New(&stubCompleter{response: `{"atsScore": -5}`})
	if got := a.AnalyzeResume(context.Background(), "x"); got.ATSScore != 0 {
		t.Errorf("ATSScore = %d, want clamped to 0", got.ATSScore)
	}
}

func TestAnalyzeSkillGapAbsentPercentage(t *testing.T) {
	a := New(&stubCompleter{response: `{"missingSkills": ["Docker"], "recommendations": []}`})

	got := a.AnalyzeSkillGap(context.Background(), []string{"Go"}, []string{"Go", "Docker"}, "desc")

	if got.MatchPercentage != nil {
		t.Errorf("MatchPercentage = %v, want nil when the response omits it", *got.MatchPercentage)
	}
}

func TestAnalyzeSkillGapFallbackOnError(t *testing.T) {
	a := New(&stubCompleter{err: unreachable()})

	got := a.AnalyzeSkillGap(context.Background(), nil, nil, "")

	if got.MatchPercentage != nil {
		t.Error("fallback must leave MatchPercentage absent")
	}
	if len(got.MissingSkills) != 0 || len(got.Recommendations) != 0 {
		t.Errorf("fallback carries data: %+v", got)
	}
}

func TestMatchJobPropagatesGatewayError(t *testing.T) {
	a := New(&stubCompleter{err: unreachable()})

	_, err := a.MatchJob(context.Background(), "resume", "Backend Developer", "desc")
	if err == nil {
		t.Fatal("expected the gateway error to propagate")
	}
	if !completion.IsGatewayError(err) {
		t.Fatalf("error %v is not a gateway error", err)
	}
}

func TestMatchJobFallbackOnParseFailure(t *testing.T) {
	a := New(&stubCompleter{response: "not json at all"})

	got, err := a.MatchJob(context.Background(), "resume", "Backend Developer", "desc")
	if err != nil {
		t.Fatalf("parse failure must not error: %v", err)
	}
	if !reflect.DeepEqual(got, JobMatchFallback()) {
		t.Fatalf("MatchJob() = %+v, want fallback", got)
	}
}

func TestGenerateQuestionsFallbackMentionsRole(t *testing.T) {
	a := New(&stubCompleter{err: unreachable()})

	got := a.GenerateQuestions(context.Background(), "Data Engineer", "entry", 5)

	if len(got) != 3 {
		t.Fatalf("fallback question count = %d, want 3", len(got))
	}
	if !strings.Contains(got[0].Question, "Data Engineer") {
		t.Errorf("fallback question %q does not mention the role", got[0].Question)
	}
}

func TestEvaluateAnswerFallbackScore(t *testing.T) {
	a := New(&stubCompleter{err: unreachable()})

	got := a.EvaluateAnswer(context.Background(), "q", "a", "role")

	if !reflect.DeepEqual(got, AnswerFallback()) {
		t.Fatalf("EvaluateAnswer() = %+v, want exact fallback", got)
	}
	if got.Score != 7 {
		t.Errorf("fallback score = %d, want 7", got.Score)
	}
}

func TestEvaluateAnswerClampsScore(t *testing.T) {
	a := New(&stubCompleter{response: `{"score": 42, "feedback": "great"}`})

	got := a.EvaluateAnswer(context.Background(), "q", "a", "role")
	if got.Score != 10 {
		t.Errorf("Score = %d, want clamped to 10", got.Score)
	}
}

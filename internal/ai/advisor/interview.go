package advisor

import (
	"context"
	"fmt"

	"github.com/Abraxas-365/ascent/internal/ai/judgment"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
)

// Question is one generated interview question.
type Question struct {
	Question   string `json:"question"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// AnswerJudgment scores a single question/answer pair.
type AnswerJudgment struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Feedback        string   `json:"feedback"`
	SuggestedAnswer string   `json:"suggestedAnswer"`
}

// QuestionsFallback returns generic behavioral questions for the role.
func QuestionsFallback(jobRole string) []Question {
	return []Question{
		{
			Question:   fmt.Sprintf("Tell me about your experience with %s.", jobRole),
			Type:       "behavioral",
			Difficulty: "easy",
		},
		{
			Question:   fmt.Sprintf("What interests you about this %s position?", jobRole),
			Type:       "behavioral",
			Difficulty: "easy",
		},
		{
			Question:   "Describe a challenging project you've worked on.",
			Type:       "situational",
			Difficulty: "medium",
		},
	}
}

func AnswerFallback() AnswerJudgment {
	return AnswerJudgment{
		Score:           7,
		Strengths:       []string{"Good attempt"},
		Improvements:    []string{"Could provide more specific examples"},
		Feedback:        "Your answer shows understanding of the topic.",
		SuggestedAnswer: "",
	}
}

const (
	questionsSystemPrompt = `You are an expert technical interviewer.
Generate realistic, role-specific interview questions.`

	evaluateSystemPrompt = `You are an expert interview evaluator.
Provide constructive feedback and scores for interview answers.`
)

// GenerateQuestions asks for count interview questions. Total function.
func (a *Advisor) GenerateQuestions(ctx context.Context, jobRole, experienceLevel string, count int) []Question {
	prompt := fmt.Sprintf(`Generate %d interview questions for a %s level %s position.

Include a mix of:
- Technical questions
- Behavioral questions
- Situational questions

Return as JSON array:
[
  {
    "question": "question text",
    "type": "technical|behavioral|situational",
    "difficulty": "easy|medium|hard"
  }
]`, count, experienceLevel, jobRole)

	raw, err := a.completer.Complete(ctx, questionsSystemPrompt, prompt)
	if err != nil {
		logx.Warnf("question generation falling back for role %q: %v", jobRole, err)
		return QuestionsFallback(jobRole)
	}

	return judgment.Array(raw, QuestionsFallback(jobRole))
}

// EvaluateAnswer scores one answer for the role. Total function.
func (a *Advisor) EvaluateAnswer(ctx context.Context, question, answer, jobRole string) AnswerJudgment {
	prompt := fmt.Sprintf(`Evaluate this interview answer for a %s position:

Question: %s
Answer: %s

Provide:
1. Score (0-10)
2. Strengths of the answer
3. Areas for improvement
4. Suggested improved answer

Return as JSON:
{
  "score": number,
  "strengths": [string],
  "improvements": [string],
  "feedback": "detailed feedback",
  "suggestedAnswer": "improved version"
}`, jobRole, question, answer)

	raw, err := a.completer.Complete(ctx, evaluateSystemPrompt, prompt)
	if err != nil {
		logx.Warnf("answer evaluation falling back: %v", err)
		return AnswerFallback()
	}

	result := judgment.Object(raw, AnswerFallback())
	result.Score = kernel.ClampInt(result.Score, 0, 10)
	return result
}

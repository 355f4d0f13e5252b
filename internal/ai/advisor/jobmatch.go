package advisor

import (
	"context"
	"fmt"

	"github.com/Abraxas-365/ascent/internal/ai/judgment"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
)

// JobMatchJudgment scores one résumé against one posting.
type JobMatchJudgment struct {
	MatchPercentage int      `json:"matchPercentage"`
	Reasons         []string `json:"reasons"`
	Concerns        []string `json:"concerns"`
	InterviewTips   []string `json:"interviewTips"`
}

func JobMatchFallback() JobMatchJudgment {
	return JobMatchJudgment{
		MatchPercentage: 65,
		Reasons:         []string{"Skills align with requirements"},
		Concerns:        []string{},
		InterviewTips:   []string{},
	}
}

const jobMatchSystemPrompt = `You are a job matching expert.
Analyze how well a resume matches a job description.`

// MatchJob is the one judgment whose gateway error propagates: the
// ranker drops the posting instead of falling back, so one bad call
// never pollutes the ranking with a synthetic score. A response that
// arrives but cannot be decoded still falls back.
func (a *Advisor) MatchJob(ctx context.Context, resumeText, jobTitle, jobDescription string) (JobMatchJudgment, error) {
	prompt := fmt.Sprintf(`Analyze the match between this resume and job posting:

Job Title: %s
Job Description: %s

Resume: %s

Provide:
1. Match percentage (0-100)
2. Why it's a good match (3-5 points)
3. Potential concerns
4. Interview preparation tips

Return as JSON:
{
  "matchPercentage": number,
  "reasons": [string],
  "concerns": [string],
  "interviewTips": [string]
}`, jobTitle, jobDescription, resumeText)

	raw, err := a.completer.Complete(ctx, jobMatchSystemPrompt, prompt)
	if err != nil {
		logx.Warnf("job match failed for %q: %v", jobTitle, err)
		return JobMatchJudgment{}, err
	}

	result := judgment.Object(raw, JobMatchFallback())
	result.MatchPercentage = kernel.ClampInt(result.MatchPercentage, 0, 100)
	return result, nil
}

package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abraxas-365/ascent/internal/ai/judgment"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
)

// Recommendation is one prioritized learning suggestion.
type Recommendation struct {
	Skill         string          `json:"skill"`
	Resources     []string        `json:"resources"`
	EstimatedTime string          `json:"estimatedTime"`
	Priority      kernel.Priority `json:"priority"`
}

// SkillGapJudgment supplements the deterministic gap computation.
// MatchPercentage is a pointer: nil means the model did not supply one
// and the deterministic value must be used instead.
type SkillGapJudgment struct {
	MissingSkills   []string         `json:"missingSkills"`
	MatchPercentage *int             `json:"matchPercentage"`
	Recommendations []Recommendation `json:"recommendations"`
}

// SkillGapFallback carries no match percentage, so reconciliation
// always lands on the deterministic value.
func SkillGapFallback() SkillGapJudgment {
	return SkillGapJudgment{
		MissingSkills:   []string{},
		MatchPercentage: nil,
		Recommendations: []Recommendation{},
	}
}

const skillGapSystemPrompt = `You are a career development expert.
Analyze skill gaps and provide learning recommendations.`

// AnalyzeSkillGap requests missing skills, an AI-judged match
// percentage, and prioritized recommendations. Total function.
func (a *Advisor) AnalyzeSkillGap(ctx context.Context, currentSkills, requiredSkills []string, jobDescription string) SkillGapJudgment {
	prompt := fmt.Sprintf(`Compare these current skills with job requirements:

Current Skills: %s

Required Skills: %s

Job Description: %s

Provide:
1. Missing skills
2. Match percentage
3. Learning recommendations with resources
4. Priority levels

Return as JSON:
{
  "missingSkills": [string],
  "matchPercentage": number,
  "recommendations": [
    {
      "skill": "skill name",
      "resources": ["resource 1", "resource 2"],
      "estimatedTime": "time to learn",
      "priority": "High|Medium|Low"
    }
  ]
}`, strings.Join(currentSkills, ", "), strings.Join(requiredSkills, ", "), jobDescription)

	raw, err := a.completer.Complete(ctx, skillGapSystemPrompt, prompt)
	if err != nil {
		logx.Warnf("skill gap analysis falling back: %v", err)
		return SkillGapFallback()
	}

	result := judgment.Object(raw, SkillGapFallback())
	if result.MatchPercentage != nil {
		clamped := kernel.ClampInt(*result.MatchPercentage, 0, 100)
		result.MatchPercentage = &clamped
	}
	for i, rec := range result.Recommendations {
		if !rec.Priority.IsValid() {
			result.Recommendations[i].Priority = kernel.PriorityMedium
		}
	}
	return result
}

package advisor

import (
	"context"
	"fmt"

	"github.com/Abraxas-365/ascent/internal/ai/judgment"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
)

// ResumeJudgment is the structured result of an ATS analysis.
type ResumeJudgment struct {
	ATSScore         int               `json:"atsScore"`
	Strengths        []string          `json:"strengths"`
	Weaknesses       []string          `json:"weaknesses"`
	MissingKeywords  []string          `json:"missingKeywords"`
	FormattingIssues []string          `json:"formattingIssues"`
	Suggestions      []string          `json:"suggestions"`
	ImprovedSections map[string]string `json:"improvedSections"`
}

// ResumeFallback is returned whenever the gateway fails or the response
// cannot be decoded, so the analysis endpoint always answers.
func ResumeFallback() ResumeJudgment {
	return ResumeJudgment{
		ATSScore:         65,
		Strengths:        []string{"Resume uploaded successfully"},
		Weaknesses:       []string{"Analysis in progress"},
		MissingKeywords:  []string{},
		FormattingIssues: []string{},
		Suggestions:      []string{"Please try again"},
		ImprovedSections: map[string]string{},
	}
}

const resumeSystemPrompt = `You are an expert ATS (Applicant Tracking System) analyzer.
Analyze resumes for keyword optimization, formatting, and content quality.
Provide scores and actionable feedback.`

// AnalyzeResume produces a ResumeJudgment for the given résumé text.
// It is total: any gateway or parsing failure yields ResumeFallback.
func (a *Advisor) AnalyzeResume(ctx context.Context, resumeText string) ResumeJudgment {
	prompt := fmt.Sprintf(`Analyze this resume and provide:
1. ATS Score (0-100)
2. Key strengths (3-5 points)
3. Missing important keywords
4. Formatting issues
5. Content improvements
6. Rewritten sections for better impact

Resume:
%s

Return the response as a JSON object with the following structure:
{
  "atsScore": number,
  "strengths": [string],
  "weaknesses": [string],
  "missingKeywords": [string],
  "formattingIssues": [string],
  "suggestions": [string],
  "improvedSections": {
    "summary": "improved text",
    "experience": "improved bullet points"
  }
}`, resumeText)

	raw, err := a.completer.Complete(ctx, resumeSystemPrompt, prompt)
	if err != nil {
		logx.Warnf("resume analysis falling back: %v", err)
		return ResumeFallback()
	}

	result := judgment.Object(raw, ResumeFallback())
	result.ATSScore = kernel.ClampInt(result.ATSScore, 0, 100)
	return result
}

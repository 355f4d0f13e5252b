package interview

import "github.com/Abraxas-365/ascent/pkg/kernel"

// GenerateQuestionsRequest - question generation request
type GenerateQuestionsRequest struct {
	JobRole         string `json:"jobRole"`
	ExperienceLevel string `json:"experienceLevel"`
	Count           int    `json:"count"`
}

// EvaluateAnswerRequest - single answer evaluation request
type EvaluateAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	JobRole  string `json:"jobRole"`
}

// SaveSessionRequest - full session submitted by the client at the end
// of a mock interview
type SaveSessionRequest struct {
	CandidateID kernel.CandidateID `json:"candidateId"`
	JobID       *kernel.JobID      `json:"jobId,omitempty"`
	JobRole     string             `json:"jobRole"`
	Questions   []SessionQuestion  `json:"questions"`
}

// SaveSessionResponse - summary returned after saving
type SaveSessionResponse struct {
	SessionID    kernel.SessionID `json:"sessionId"`
	OverallScore int              `json:"overallScore"`
	Strengths    []string         `json:"strengths"`
	Improvements []string         `json:"improvements"`
}

func (s *Session) ToSaveResponse() SaveSessionResponse {
	return SaveSessionResponse{
		SessionID:    s.ID,
		OverallScore: s.OverallScore,
		Strengths:    s.Strengths,
		Improvements: s.Improvements,
	}
}

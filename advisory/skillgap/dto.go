package skillgap

import "github.com/Abraxas-365/ascent/pkg/kernel"

// AnalyzeRequest - skill gap analysis request
type AnalyzeRequest struct {
	CandidateID kernel.CandidateID `json:"candidateId"`
	JobID       kernel.JobID       `json:"jobId"`
}

func (r AnalyzeRequest) Validate() bool {
	return !r.CandidateID.IsEmpty() && !r.JobID.IsEmpty()
}

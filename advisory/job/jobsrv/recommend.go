package jobsrv

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/pkg/logx"
)

const (
	// MaxCandidatePostings caps the fan-out: at most this many
	// postings are scored per recommendation request.
	MaxCandidatePostings = 50

	// DefaultTopN is the result count when the request omits topN.
	DefaultTopN = 10
)

// Recommend scores the candidate's résumé against every active posting
// (capped) with one concurrent gateway call per posting, drops postings
// whose call fails, and returns the topN results sorted descending by
// match percentage. Ties keep the original posting order.
func (s *JobService) Recommend(ctx context.Context, req job.RecommendRequest) ([]job.MatchResult, error) {
	if req.CandidateID.IsEmpty() {
		return nil, job.ErrInvalidPosting().WithDetail("candidateId", "missing or empty")
	}

	topN := req.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	prof, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	if !prof.HasResume() {
		return nil, job.ErrJobNotFound().
			WithMessage("User resume not found").
			WithDetail("candidate_id", req.CandidateID.String())
	}

	cacheKey := fmt.Sprintf("recommendations:%s:%d", req.CandidateID, topN)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			logx.Debugf("recommendation cache hit for candidate %s", req.CandidateID)
			return cached, nil
		}
	}

	postings, err := s.repo.ListActive(ctx, MaxCandidatePostings)
	if err != nil {
		return nil, err
	}

	results := s.rankPostings(ctx, prof.ResumeText, postings)

	if len(results) > topN {
		results = results[:topN]
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, results)
	}

	return results, nil
}

// rankPostings fans out one matcher call per posting. Sibling failures
// are independent: a failed call drops only its own posting and does
// not cancel the others.
func (s *JobService) rankPostings(ctx context.Context, resumeText string, postings []job.Posting) []job.MatchResult {
	slots := make([]*job.MatchResult, len(postings))

	var wg sync.WaitGroup
	for i := range postings {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := &postings[i]

			judged, err := s.matcher.MatchJob(ctx, resumeText, p.Title, p.Description)
			if err != nil {
				logx.Warnf("dropping posting %s from ranking: %v", p.ID, err)
				return
			}

			slots[i] = &job.MatchResult{
				Job:             p.ToSummary(),
				MatchPercentage: judged.MatchPercentage,
				Reasons:         judged.Reasons,
				Concerns:        judged.Concerns,
				InterviewTips:   judged.InterviewTips,
			}
		}(i)
	}
	wg.Wait()

	// Collect in posting order so the stable sort tie-breaks on it.
	results := make([]job.MatchResult, 0, len(postings))
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].MatchPercentage > results[b].MatchPercentage
	})

	return results
}

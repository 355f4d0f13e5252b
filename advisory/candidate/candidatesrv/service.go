package candidatesrv

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidateauth"
	"github.com/Abraxas-365/ascent/internal/profile"
	"github.com/Abraxas-365/ascent/pkg/errx"
	"github.com/Abraxas-365/ascent/pkg/fsx"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/google/uuid"
)

// CandidateService owns profile creation and résumé replacement.
type CandidateService struct {
	repo       candidate.Repository
	parser     *profile.Parser
	fileSystem fsx.FileSystem
	tokens     *candidateauth.TokenService
}

func NewCandidateService(
	repo candidate.Repository,
	parser *profile.Parser,
	fileSystem fsx.FileSystem,
	tokens *candidateauth.TokenService,
) *CandidateService {
	return &CandidateService{
		repo:       repo,
		parser:     parser,
		fileSystem: fileSystem,
		tokens:     tokens,
	}
}

// UploadResume extracts a profile from the document and creates the
// candidate on first upload for the email, or replaces the stored
// text/skills/file wholesale on re-upload. Extraction failure is not
// an error: the upload proceeds with an empty profile.
func (s *CandidateService) UploadResume(ctx context.Context, req candidate.UploadResumeRequest) (*candidate.UploadResumeResponse, error) {
	if len(req.Data) == 0 {
		return nil, candidate.ErrNoFileUploaded()
	}

	ext := s.parser.Parse(req.Data)
	logx.Infof("resume parsed: %d skills extracted, text length %d", len(ext.Skills), len(ext.Text))

	email := req.Email
	if email.IsEmpty() {
		email = kernel.NewEmail(ext.Email)
	}
	if email.IsEmpty() {
		// Last resort so the upload still produces a record.
		email = kernel.NewEmail(fmt.Sprintf("user_%d@temp.com", time.Now().UnixMilli()))
	}
	if !email.IsValid() {
		return nil, candidate.ErrInvalidEmail().WithDetail("email", email.String())
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if e, ok := errx.AsError(err); !ok || !e.IsType(errx.TypeNotFound) {
			return nil, err
		}
	}

	var prof *candidate.Profile
	if existing == nil {
		now := time.Now()
		prof = &candidate.Profile{
			ID:        kernel.NewCandidateID(uuid.NewString()),
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		prof = existing
	}

	filePath := s.fileSystem.Join("resumes", prof.ID.String(), req.FileName)
	if err := s.fileSystem.WriteFile(ctx, filePath, req.Data); err != nil {
		return nil, candidate.ErrFileStoreFailed().
			WithDetail("file", req.FileName).
			WithCause(err)
	}

	prof.ReplaceResume(kernel.BucketURL(filePath), ext.Text, ext.Skills, kernel.Phone(ext.Phone))

	if existing == nil {
		err = s.repo.Create(ctx, prof)
	} else {
		err = s.repo.Update(ctx, prof)
	}
	if err != nil {
		// Keep storage consistent with the database.
		_ = s.fileSystem.DeleteFile(context.Background(), filePath)
		return nil, err
	}

	token, err := s.tokens.Generate(prof.ID, prof.Email)
	if err != nil {
		return nil, err
	}

	logx.Infof("resume uploaded for candidate %s", prof.ID)

	return &candidate.UploadResumeResponse{
		Candidate: prof.ToResponse(),
		Token:     token,
	}, nil
}

// GetProfile returns the public view of a candidate.
func (s *CandidateService) GetProfile(ctx context.Context, id kernel.CandidateID) (*candidate.ProfileResponse, error) {
	prof, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := prof.ToResponse()
	return &resp, nil
}

// ListProfiles returns candidates with pagination.
func (s *CandidateService) ListProfiles(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Profile], error) {
	return s.repo.List(ctx, pagination)
}

package candidateauth

import (
	"time"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/pkg/errx"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates candidate-scoped access tokens.
// Tokens are handed out at upload time and guard history endpoints.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenService(secret string, ttl time.Duration, issuer string) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// Claims are the candidate-specific token claims.
type Claims struct {
	CandidateID kernel.CandidateID `json:"candidate_id"`
	Email       kernel.Email       `json:"email"`
	jwt.RegisteredClaims
}

// Generate creates a signed token for the candidate.
func (s *TokenService) Generate(candidateID kernel.CandidateID, email kernel.Email) (string, error) {
	now := time.Now()
	claims := Claims{
		CandidateID: candidateID,
		Email:       email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   candidateID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign candidate token", errx.TypeInternal)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, candidate.ErrUnauthorized().WithDetail("alg", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, candidate.ErrUnauthorized().WithCause(err)
	}
	return claims, nil
}

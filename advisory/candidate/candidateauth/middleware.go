package candidateauth

import (
	"strings"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Middleware validates candidate access tokens on protected routes.
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return candidate.ErrUnauthorized().WithDetail("header", "missing")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return candidate.ErrUnauthorized().WithDetail("header", "invalid format")
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return err
		}

		c.Locals("candidate_id", claims.CandidateID)
		c.Locals("candidate_email", claims.Email)

		return c.Next()
	}
}

// GetCandidateID extracts the authenticated candidate ID from the context.
func GetCandidateID(c *fiber.Ctx) (kernel.CandidateID, bool) {
	candidateID, ok := c.Locals("candidate_id").(kernel.CandidateID)
	return candidateID, ok
}

// GetCandidateEmail extracts the authenticated candidate email from the context.
func GetCandidateEmail(c *fiber.Ctx) (kernel.Email, bool) {
	email, ok := c.Locals("candidate_email").(kernel.Email)
	return email, ok
}

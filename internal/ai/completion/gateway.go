package completion

import (
	"context"
	"errors"
	"net/http"

	"github.com/Abraxas-365/ascent/pkg/errx"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Error registry for the gateway. Every failure mode is recoverable:
// callers absorb these by falling back, never by aborting the request.
var ErrRegistry = errx.NewRegistry("GATEWAY")

var (
	CodeUnreachable     = ErrRegistry.Register("UNREACHABLE", errx.TypeExternal, http.StatusBadGateway, "Inference backend unreachable")
	CodeRateLimited     = ErrRegistry.Register("RATE_LIMITED", errx.TypeExternal, http.StatusTooManyRequests, "Inference backend rate limited")
	CodeInvalidResponse = ErrRegistry.Register("INVALID_RESPONSE", errx.TypeExternal, http.StatusBadGateway, "Inference backend returned an invalid response")
)

// Completer is the contract consumed by every AI-judging component.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config carries the fixed sampling parameters. The values are a tuning
// concern, not part of the contract.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// Gateway is the single chokepoint for inference calls.
type Gateway struct {
	client *openai.Client
	cfg    Config
}

func NewGateway(apiKey string, cfg Config) *Gateway {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)
	if cfg.Model == "" {
		cfg = DefaultConfig()
	}
	return &Gateway{
		client: &client,
		cfg:    cfg,
	}
}

// Complete builds the message sequence (optional system role + required
// user role) and returns the first completion's text.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       g.cfg.Model,
		Temperature: openai.Float(g.cfg.Temperature),
		MaxTokens:   openai.Int(int64(g.cfg.MaxTokens)),
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrRegistry.New(CodeInvalidResponse).
			WithDetail("reason", "no choices in completion")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", ErrRegistry.New(CodeInvalidResponse).
			WithDetail("reason", "empty completion content")
	}

	return content, nil
}

func classify(err error) *errx.Error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return ErrRegistry.NewWithCause(CodeRateLimited, err)
		case apiErr.StatusCode >= 400:
			return ErrRegistry.NewWithCause(CodeInvalidResponse, err).
				WithDetail("status", apiErr.StatusCode)
		}
	}
	return ErrRegistry.NewWithCause(CodeUnreachable, err)
}

// IsGatewayError reports whether err originated at the gateway.
func IsGatewayError(err error) bool {
	e, ok := errx.AsError(err)
	if !ok {
		return false
	}
	switch e.Code {
	case CodeUnreachable, CodeRateLimited, CodeInvalidResponse:
		return true
	}
	return false
}

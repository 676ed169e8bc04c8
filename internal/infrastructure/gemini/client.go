package gemini

import (
	"context"
	"fmt"
	"log"

	"github.com/cartwise/backend/internal/domain"
	"golang.org/x/time/rate"
	genai "google.golang.org/genai"
)

// Client wraps the official genai client for the two pipeline calls:
// schema-constrained extraction and free-form JSON selection.
type Client struct {
	cli         *genai.Client
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a Gemini client. The API key is validated at config load;
// an empty key here still fails fast rather than at the first request.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: missing API key")
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}

	// Free-tier Gemini allows ~10 requests/min on flash models
	limiter := rate.NewLimiter(rate.Limit(0.15), 2)

	return &Client{
		cli:         cli,
		model:       model,
		rateLimiter: limiter,
	}, nil
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// generateJSON sends one prompt and returns the model's text, which the
// generation config constrains to application/json.
func (c *Client) generateJSON(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	if c.debug {
		log.Printf("[gemini] request model=%s prompt_bytes=%d", c.model, len(prompt))
	}

	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		config,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrModelCallFailure, err)
	}

	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrModelOutputInvalid)
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if c.debug {
		log.Printf("[gemini] response bytes=%d", len(text))
	}

	return text, nil
}

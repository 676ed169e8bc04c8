package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cartwise/backend/internal/domain"
	genai "google.golang.org/genai"
)

const extractionPromptTemplate = `You are a strict structured data extraction engine.

Return ONLY valid JSON. No explanations. No markdown. No extra text.

Schema (must match exactly):
{
  "items": [{"name": "string", "quantity": "integer|null", "notes": "string|null"}],
  "constraints": {"budget": "string|null", "currency": "string|null", "location": "string|null"},
  "raw": "string"
}

Rules:
- Extract only products the user wants to buy.
- "name" should be short and generic.
- quantity only if explicitly stated, else null.
- Put item-specific details in notes, else null.
- budget/currency/location only if explicitly stated, else null.
- "raw" must copy the user request exactly.

User request:
"%s"
`

// ExtractShoppingRequest asks the model to coerce free text into a
// structured shopping request. The result is raw model output: quantities
// may be zero, sentinel strings are untouched and the budget is not yet
// canonical. Normalization happens in the usecase layer.
func (c *Client) ExtractShoppingRequest(ctx context.Context, userText string) (*domain.ShoppingRequest, error) {
	prompt := fmt.Sprintf(extractionPromptTemplate, userText)

	text, err := c.generateJSON(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   extractionResponseSchema(),
	})
	if err != nil {
		return nil, err
	}

	return parseExtraction(text)
}

// parseExtraction validates the model text against the extraction schema and
// decodes it. Any failure surfaces as ErrModelOutputInvalid with the raw
// text attached so the caller can diagnose or retry.
func parseExtraction(text string) (*domain.ShoppingRequest, error) {
	if err := validateAgainstSchema(extractionJSONSchema(), []byte(text)); err != nil {
		return nil, fmt.Errorf("%w: %v; raw: %s", domain.ErrModelOutputInvalid, err, text)
	}

	var payload struct {
		Items []struct {
			Name     string  `json:"name"`
			Quantity *int    `json:"quantity"`
			Notes    *string `json:"notes"`
		} `json:"items"`
		Constraints struct {
			Budget   *string `json:"budget"`
			Currency *string `json:"currency"`
			Location *string `json:"location"`
		} `json:"constraints"`
		Raw string `json:"raw"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v; raw: %s", domain.ErrModelOutputInvalid, err, text)
	}

	req := &domain.ShoppingRequest{
		Items: make([]domain.Item, 0, len(payload.Items)),
		Raw:   payload.Raw,
	}
	for _, it := range payload.Items {
		item := domain.Item{Name: it.Name, Notes: it.Notes}
		if it.Quantity != nil {
			item.Quantity = *it.Quantity
		}
		req.Items = append(req.Items, item)
	}
	req.Constraints.Budget = payload.Constraints.Budget
	req.Constraints.Currency = payload.Constraints.Currency
	if payload.Constraints.Location != nil {
		req.Constraints.Location = *payload.Constraints.Location
	}

	return req, nil
}

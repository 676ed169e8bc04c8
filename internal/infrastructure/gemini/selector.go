package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cartwise/backend/internal/domain"
	genai "google.golang.org/genai"
)

// payloadByteCap bounds the candidate JSON embedded in the selection prompt.
const payloadByteCap = 200_000

const selectionPromptTemplate = `You are selecting shopping options.
Goal: choose ONE best option per product, respecting overall budget if provided.

Constraints:
- budget: %s
- currency: %s
- location: %s

Rules:
- Prefer lowest total cost, but consider quality signals (rating/reviews) when price is close.
- If budget is not enough for all items, choose a subset that maximizes value (cover as many items as possible).
- Return STRICT JSON only with this schema:

{
"selected": [
    {
    "product": string,
    "title": string,
    "unit_price": number,
    "quantity": number,
    "row_total": number,
    "product_link": string
    }
],
"total": number
}

Candidates:
%s
`

// selectionRecord is the reduced column set sent to the model per candidate.
type selectionRecord struct {
	Product     string  `json:"product"`
	Title       string  `json:"title"`
	Source      string  `json:"source"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	RowTotal    float64 `json:"row_total"`
	ProductLink string  `json:"product_link"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// ChooseBest asks the model to pick one offer per product within budget.
// Unlike extraction there is no response schema; the contract rests on the
// prompt, so a malformed response surfaces as ErrModelOutputInvalid.
func (c *Client) ChooseBest(ctx context.Context, candidates []domain.Candidate, constraints domain.Constraints) (*domain.Selection, error) {
	payload, dropped := buildSelectionPayload(candidates, payloadByteCap)
	if dropped > 0 {
		log.Printf("[gemini] selection payload capped: %d of %d candidates dropped", dropped, len(candidates))
	}

	prompt := fmt.Sprintf(selectionPromptTemplate,
		nullable(constraints.Budget),
		nullable(constraints.Currency),
		constraints.Location,
		payload,
	)

	text, err := c.generateJSON(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, err
	}

	return parseSelection(text)
}

// buildSelectionPayload marshals candidates into a JSON array, adding whole
// records until the byte cap would be exceeded. Truncating at record
// boundaries keeps the embedded JSON well formed regardless of where the cap
// lands. Returns the payload and how many trailing candidates were dropped.
func buildSelectionPayload(candidates []domain.Candidate, byteCap int) (string, int) {
	var b strings.Builder
	b.WriteByte('[')

	included := 0
	for _, c := range candidates {
		rec, err := json.Marshal(selectionRecord{
			Product:     c.Product,
			Title:       c.Title,
			Source:      c.Source,
			UnitPrice:   c.UnitPrice,
			Quantity:    c.Quantity,
			RowTotal:    c.RowTotal,
			ProductLink: c.ProductLink,
			Rating:      c.Rating,
			Reviews:     c.Reviews,
		})
		if err != nil {
			continue
		}

		// +2 covers the separator and the closing bracket
		if b.Len()+len(rec)+2 > byteCap {
			break
		}
		if included > 0 {
			b.WriteByte(',')
		}
		b.Write(rec)
		included++
	}

	b.WriteByte(']')
	return b.String(), len(candidates) - included
}

// parseSelection decodes the model's bundle choice. Missing "selected"
// defaults to an empty list and missing "total" to zero; the total itself is
// the model's arithmetic and is not reconciled against the rows.
func parseSelection(text string) (*domain.Selection, error) {
	var sel domain.Selection
	if err := json.Unmarshal([]byte(text), &sel); err != nil {
		return nil, fmt.Errorf("%w: %v; raw: %s", domain.ErrModelOutputInvalid, err, text)
	}
	if sel.Selected == nil {
		sel.Selected = []domain.SelectedOffer{}
	}
	return &sel, nil
}

func nullable(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

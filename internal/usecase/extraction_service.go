package usecase

import (
	"context"
	"strings"

	"github.com/cartwise/backend/internal/domain"
	"github.com/cartwise/backend/internal/money"
)

// defaultExtractionLocation is applied when the model reports no usable
// location. A second, more specific fallback exists at search time; the two
// defaults are intentionally distinct.
const defaultExtractionLocation = "Malaysia"

// ExtractionService turns free text into a normalized shopping request.
type ExtractionService struct {
	extractor domain.TextExtractor
}

// NewExtractionService creates an extraction service around a text extractor
func NewExtractionService(extractor domain.TextExtractor) *ExtractionService {
	return &ExtractionService{extractor: extractor}
}

// Extract runs the model call and the deterministic normalization pass.
func (s *ExtractionService) Extract(ctx context.Context, userText string) (*domain.ShoppingRequest, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, domain.ErrInvalidRequest
	}

	req, err := s.extractor.ExtractShoppingRequest(ctx, userText)
	if err != nil {
		return nil, err
	}

	NormalizeShoppingRequest(req)
	return req, nil
}

// NormalizeShoppingRequest applies the pure normalization pass over raw model
// output: quantities default to 1, sentinel strings collapse to nil or the
// location default, and the budget becomes canonical.
func NormalizeShoppingRequest(req *domain.ShoppingRequest) {
	if req == nil {
		return
	}

	if req.Items == nil {
		req.Items = []domain.Item{}
	}
	for i := range req.Items {
		if req.Items[i].Quantity <= 0 {
			req.Items[i].Quantity = 1
		}
	}

	if req.Constraints.Currency != nil && isNullSentinel(*req.Constraints.Currency) {
		req.Constraints.Currency = nil
	}

	if isNullSentinel(req.Constraints.Location) {
		req.Constraints.Location = defaultExtractionLocation
	}

	if req.Constraints.Budget != nil {
		req.Constraints.Budget = money.NormalizeBudget(*req.Constraints.Budget)
	}
}

// isNullSentinel reports whether a string is one of the "no value" spellings
// models emit instead of an actual null.
func isNullSentinel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null", "none":
		return true
	}
	return false
}

package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cartwise/backend/internal/domain"
	"github.com/cartwise/backend/internal/infrastructure/serpapi"
)

// searchFallbackLocation is used for provider queries when extraction yields
// no usable location. More specific than the extraction-time default
// ("Malaysia") so the provider gets a resolvable locality.
const searchFallbackLocation = "Kuala Lumpur, Federal Territory of Kuala Lumpur, Malaysia"

// ShoppingServiceConfig holds configuration for the shopping pipeline
type ShoppingServiceConfig struct {
	TopNPerProduct int
}

// ShoppingService runs the full pipeline: extract -> search per item ->
// rank -> select.
type ShoppingService struct {
	extraction *ExtractionService
	provider   domain.ShoppingSearchProvider
	selector   domain.OfferSelector
	topN       int
}

// NewShoppingService creates the pipeline service with its dependencies
func NewShoppingService(
	extractor domain.TextExtractor,
	provider domain.ShoppingSearchProvider,
	selector domain.OfferSelector,
	config ShoppingServiceConfig,
) *ShoppingService {
	topN := config.TopNPerProduct
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &ShoppingService{
		extraction: NewExtractionService(extractor),
		provider:   provider,
		selector:   selector,
		topN:       topN,
	}
}

// Plan executes one stateless request cycle. Item searches run sequentially
// in list order and the first provider or model error aborts the whole run;
// there is no partial-result continuation.
func (s *ShoppingService) Plan(ctx context.Context, userText string) (*domain.ShoppingPlan, error) {
	req, err := s.extraction.Extract(ctx, userText)
	if err != nil {
		return nil, err
	}

	candidates, err := s.collectCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	ranked := TopNPerProduct(candidates, s.topN)

	plan := &domain.ShoppingPlan{
		Request:        *req,
		CandidateCount: len(ranked),
		Selection:      domain.Selection{Selected: []domain.SelectedOffer{}},
	}

	if len(ranked) == 0 {
		log.Printf("[pipeline] no candidates for %d item(s), skipping selection", len(req.Items))
		return plan, nil
	}

	selection, err := s.selector.ChooseBest(ctx, ranked, req.Constraints)
	if err != nil {
		return nil, err
	}
	plan.Selection = *selection

	return plan, nil
}

// collectCandidates searches the provider once per requested item and maps
// the listings into candidate rows.
func (s *ShoppingService) collectCandidates(ctx context.Context, req *domain.ShoppingRequest) ([]domain.Candidate, error) {
	location := searchLocation(req.Constraints.Location)

	var all []domain.Candidate
	for _, item := range req.Items {
		listings, err := s.provider.SearchShopping(ctx, item.Name, location)
		if err != nil {
			return nil, fmt.Errorf("searching %q: %w", item.Name, err)
		}

		candidates := serpapi.ToCandidates(listings, item.Name, item.Quantity)
		log.Printf("[pipeline] %q: %d listings, %d priced candidates", item.Name, len(listings), len(candidates))
		all = append(all, candidates...)
	}

	return all, nil
}

// searchLocation resolves the location string handed to the provider.
func searchLocation(extracted string) string {
	if strings.TrimSpace(extracted) == "" || strings.EqualFold(strings.TrimSpace(extracted), "null") {
		return searchFallbackLocation
	}
	return extracted
}

package serpapi

import (
	"github.com/cartwise/backend/internal/domain"
	"github.com/cartwise/backend/internal/money"
)

// ToCandidates converts raw shopping listings into candidate rows for one
// requested product. The unit price prefers the provider's pre-extracted
// numeric field and falls back to parsing the display price; listings where
// neither yields a price are dropped. Quantity defaults to 1.
func ToCandidates(listings []domain.ShoppingListing, product string, quantity int) []domain.Candidate {
	if quantity <= 0 {
		quantity = 1
	}

	candidates := make([]domain.Candidate, 0, len(listings))
	for _, listing := range listings {
		unitPrice := extractUnitPrice(listing)
		if unitPrice == nil {
			continue
		}

		candidates = append(candidates, domain.Candidate{
			Product:     product,
			Title:       listing.Title,
			Source:      listing.Source,
			Price:       listing.Price,
			UnitPrice:   *unitPrice,
			Quantity:    quantity,
			RowTotal:    money.RowTotal(*unitPrice, quantity),
			Rating:      listing.Rating,
			Reviews:     listing.Reviews,
			Delivery:    listing.Delivery,
			ProductLink: listing.ProductLink,
		})
	}

	return candidates
}

// extractUnitPrice resolves the listing's unit price, preferring the
// provider's extracted_price over the display string.
func extractUnitPrice(listing domain.ShoppingListing) *float64 {
	if listing.ExtractedPrice != nil {
		return money.ToMoney(*listing.ExtractedPrice)
	}
	return money.ToMoney(listing.Price)
}

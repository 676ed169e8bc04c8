package domain

import "context"

// TextExtractor turns a free-text shopping request into a structured record.
// Implementations must return ErrModelOutputInvalid (wrapped, with the raw
// model text in the message) when the response cannot be parsed.
type TextExtractor interface {
	ExtractShoppingRequest(ctx context.Context, userText string) (*ShoppingRequest, error)
}

// ShoppingSearchProvider searches an external marketplace for listings
// matching a query in a given location.
type ShoppingSearchProvider interface {
	SearchShopping(ctx context.Context, query, location string) ([]ShoppingListing, error)
}

// OfferSelector picks the best affordable bundle from ranked candidates.
type OfferSelector interface {
	ChooseBest(ctx context.Context, candidates []Candidate, constraints Constraints) (*Selection, error)
}

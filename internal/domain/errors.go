package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrModelOutputInvalid is returned when the model response is not valid
	// JSON or does not match the expected schema
	ErrModelOutputInvalid = errors.New("model returned invalid output")

	// ErrSearchProviderFailure is returned when the shopping-search provider
	// returns an error envelope or an HTTP failure
	ErrSearchProviderFailure = errors.New("shopping search request failed")

	// ErrModelCallFailure is returned when the LLM call itself fails
	ErrModelCallFailure = errors.New("model request failed")

	// ErrRateLimited is returned when an outbound rate limit wait is aborted
	ErrRateLimited = errors.New("rate limit exceeded")
)

package domain

import "errors"

var (
	// ErrRateLimitExceeded is returned when a provider keeps responding 429 after retries
	ErrRateLimitExceeded = errors.New("provider rate limit exceeded")

	// ErrContractNotFound is returned when a provider does not recognize a contract.
	// This is permanent for the provider, callers should stop asking.
	ErrContractNotFound = errors.New("contract not found at provider")

	// ErrProviderUnavailable is returned on transient provider failures (5xx, timeouts)
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMalformedPayload is returned when provider data cannot be decoded
	ErrMalformedPayload = errors.New("malformed provider payload")

	// ErrInvalidSignature is returned when a webhook signature does not verify
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrCollectionNotFound is returned when a collection is not found
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrWalletNotFound is returned when a wallet is not found
	ErrWalletNotFound = errors.New("wallet not found")
)

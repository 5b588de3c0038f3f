package core

import "errors"

var (
	// ErrInvalidRequest marks generation parameters outside the contract
	// (count or difficulty out of range, missing topic). Never retried.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrConfigMissing marks an absent API credential. Detected before any
	// network attempt so the user sees a configuration problem, not a
	// transport one.
	ErrConfigMissing = errors.New("missing configuration")

	// ErrGenerationUnavailable marks a transport, auth or rate-limit
	// failure from the model endpoint. Propagated as-is to the caller.
	ErrGenerationUnavailable = errors.New("generation unavailable")

	// ErrMalformedOutput marks a model response that failed strict
	// structural parsing. The raw response is discarded; nothing from the
	// batch reaches history or storage.
	ErrMalformedOutput = errors.New("malformed generation output")
)

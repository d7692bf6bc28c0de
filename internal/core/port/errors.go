package port

import "errors"

var (
	// ErrInvalidProperty signals an unknown property code. Maps to a 4xx.
	ErrInvalidProperty = errors.New("invalid property code")
	// ErrNoCampaign signals an empty candidate list after filtering. Callers
	// treat it as "no ad to show", not a failure.
	ErrNoCampaign = errors.New("no eligible campaign")
	// ErrFetchFailed signals an exhausted remote asset fetch. The renderer
	// recovers with a placeholder; it never reaches a response.
	ErrFetchFailed = errors.New("asset fetch failed")
	// ErrFontUnavailable signals that a preferred font could not be loaded.
	// Recovered via the fallback chain.
	ErrFontUnavailable = errors.New("font unavailable")
	// ErrRecordingFailed signals an event-log append error. Logged for
	// operators; must not block a redirect or an already-rendered image.
	ErrRecordingFailed = errors.New("event recording failed")
)

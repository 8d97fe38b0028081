package llm

import "errors"

var (
	// ErrQuotaExceeded means the upstream account ran out of credit. The
	// caller should surface a service-unavailable response, not retry.
	ErrQuotaExceeded = errors.New("llm: quota exceeded")

	// ErrRateLimited means the upstream throttled this request.
	ErrRateLimited = errors.New("llm: rate limited")
)

package ports

import "context"

// StatusRepository resolves domain-scoped status codes to their table ids.
// A failed resolution is a server misconfiguration and is reported as a
// StatusNotFound error, never as a user-facing validation failure.
type StatusRepository interface {
	// GetByDomainAndCode returns the status id for the (domain, code) pair.
	GetByDomainAndCode(ctx context.Context, domain, code string) (int64, error)
}

package ports

import (
	"context"
	"io"
)

// ProofStore persists uploaded payment-proof images and serves them back by
// public URL. The store sits outside the database transaction: the HTTP
// adapter saves the file first, runs the order mutation, and removes the file
// best-effort if the mutation fails, so failed transitions do not leak
// orphaned uploads.
type ProofStore interface {
	// Save stores the content under a name derived from originalName and
	// returns the public URL of the stored file.
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)

	// Remove deletes a previously stored file by its public URL. Removal is
	// best-effort cleanup; callers may ignore the returned error.
	Remove(ctx context.Context, url string) error
}

// Package proofstore stores uploaded payment-proof images on the local disk
// and serves them back by public URL. Files are written outside the database
// transaction; the HTTP adapter removes them best-effort when the associated
// order mutation fails.
package proofstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalProofStore keeps proof images in a flat directory and exposes them
// under a configured public URL prefix. The stored name is a fresh UUID with
// the upload's extension, so concurrent uploads never collide and original
// file names never leak into URLs.
type LocalProofStore struct {
	dir       string
	urlPrefix string
}

// NewLocalProofStore creates a store rooted at dir, creating it if needed.
// urlPrefix is the public base URL under which the directory is served.
func NewLocalProofStore(dir, urlPrefix string) (*LocalProofStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create proof store dir: %w", err)
	}

	return &LocalProofStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Save stores the content under a UUID-based name and returns its public URL.
func (s *LocalProofStore) Save(_ context.Context, originalName string, content io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	file, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create proof file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("write proof file: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("close proof file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// Remove deletes a stored file by its public URL. Unknown URLs are rejected;
// a file that is already gone is not an error.
func (s *LocalProofStore) Remove(_ context.Context, url string) error {
	name, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("url %q is not served by this store", url)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

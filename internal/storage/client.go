// Package storage abstracts the object-storage service behind a small client
// interface so the retry policy and key scheme are testable without the real
// transport.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrConflict is returned by Create when an object already exists under the
// key. Upload retries the write as an Update in that case.
var ErrConflict = errors.New("object already exists")

type Client interface {
	// Create writes a new object, failing with ErrConflict if the key is taken.
	Create(ctx context.Context, key string, data []byte, contentType string) error
	// Update overwrites the object unconditionally.
	Update(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes the object; a missing object counts as success.
	Delete(ctx context.Context, key string) error
	// Exists reports whether the object is present; transport errors read as false.
	Exists(ctx context.Context, key string) bool
	PublicURL(key string) string
}

// CertificateKey derives the object key for a certificate. The key is always
// reconstructible from the code alone; no mapping is persisted.
func CertificateKey(code string) string {
	return code + ".pdf"
}

const maxUploadAttempts = 3

// stubbed in tests to keep the retry loop fast
var sleep = time.Sleep

// Upload pushes the object through the client with the bounded retry policy:
// a conflicting create is retried as an update, and any other failure retries
// the whole sequence with a linearly growing delay. Returns the public URL on
// success.
func Upload(ctx context.Context, c Client, key string, data []byte, contentType string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxUploadAttempts; attempt++ {
		err := c.Create(ctx, key, data, contentType)
		if errors.Is(err, ErrConflict) {
			slog.Info("Storage upload found existing object, updating", "key", key)
			err = c.Update(ctx, key, data, contentType)
		}

		if err == nil {
			return c.PublicURL(key), nil
		}

		lastErr = err
		slog.Warn("Storage upload attempt failed",
			"key", key,
			"attempt", attempt,
			"error", err)

		if attempt < maxUploadAttempts {
			sleep(time.Duration(attempt) * time.Second)
		}
	}

	return "", fmt.Errorf("upload of %s failed after %d attempts: %w", key, maxUploadAttempts, lastErr)
}

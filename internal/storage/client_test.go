package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient scripts per-call behavior through Func fields.
type fakeClient struct {
	CreateFunc func(ctx context.Context, key string, data []byte, contentType string) error
	UpdateFunc func(ctx context.Context, key string, data []byte, contentType string) error
}

func (f *fakeClient) Create(ctx context.Context, key string, data []byte, contentType string) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, key, data, contentType)
	}
	return nil
}

func (f *fakeClient) Update(ctx context.Context, key string, data []byte, contentType string) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, key, data, contentType)
	}
	return nil
}

func (f *fakeClient) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (f *fakeClient) Delete(ctx context.Context, key string) error        { return nil }
func (f *fakeClient) Exists(ctx context.Context, key string) bool         { return false }
func (f *fakeClient) PublicURL(key string) string                         { return "https://cdn.test/" + key }

func stubSleep(t *testing.T) *[]time.Duration {
	t.Helper()

	var slept []time.Duration
	orig := sleep
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleep = orig })
	return &slept
}

func TestCertificateKey(t *testing.T) {
	assert.Equal(t, "CERT-AB12.pdf", CertificateKey("CERT-AB12"))
}

func TestUploadFirstAttemptSucceeds(t *testing.T) {
	slept := stubSleep(t)

	url, err := Upload(context.Background(), &fakeClient{}, "a.pdf", []byte("pdf"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.pdf", url)
	assert.Empty(t, *slept)
}

func TestUploadConflictFallsBackToUpdate(t *testing.T) {
	slept := stubSleep(t)

	updated := 0
	client := &fakeClient{
		CreateFunc: func(ctx context.Context, key string, data []byte, contentType string) error {
			return ErrConflict
		},
		UpdateFunc: func(ctx context.Context, key string, data []byte, contentType string) error {
			updated++
			return nil
		},
	}

	url, err := Upload(context.Background(), client, "a.pdf", []byte("pdf"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.pdf", url)
	assert.Equal(t, 1, updated, "a conflicting create is retried as an update, not counted as a failure")
	assert.Empty(t, *slept)
}

func TestUploadRetriesWithGrowingDelay(t *testing.T) {
	slept := stubSleep(t)

	attempts := 0
	client := &fakeClient{
		CreateFunc: func(ctx context.Context, key string, data []byte, contentType string) error {
			attempts++
			if attempts < 3 {
				return errors.New("connection reset")
			}
			return nil
		},
	}

	url, err := Upload(context.Background(), client, "a.pdf", []byte("pdf"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.pdf", url)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *slept)
}

func TestUploadExhaustsAttempts(t *testing.T) {
	slept := stubSleep(t)

	attempts := 0
	client := &fakeClient{
		CreateFunc: func(ctx context.Context, key string, data []byte, contentType string) error {
			attempts++
			return errors.New("connection reset")
		},
	}

	_, err := Upload(context.Background(), client, "a.pdf", []byte("pdf"), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, attempts)
	assert.Len(t, *slept, 2, "no delay after the final attempt")
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient implements Client against a MinIO (S3-compatible) endpoint.
type MinioClient struct {
	client   *minio.Client
	endpoint string
	bucket   string
}

func NewMinio(endpoint string, accessKey string, secretKey string, bucket string) (*MinioClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	m := &MinioClient{
		client:   client,
		endpoint: endpoint,
		bucket:   bucket,
	}

	if err := m.ensureBucketPublic(context.Background()); err != nil {
		slog.Warn("Failed to ensure bucket is public", "error", err, "bucket", bucket)
	}

	return m, nil
}

// ensureBucketPublic creates the bucket if needed and allows anonymous reads,
// so public URLs work without signing.
func (m *MinioClient) ensureBucketPublic(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": "*",
				"Action": "s3:GetObject",
				"Resource": "arn:aws:s3:::%s/*"
			}
		]
	}`, m.bucket)

	if err := m.client.SetBucketPolicy(ctx, m.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

func (m *MinioClient) Create(ctx context.Context, key string, data []byte, contentType string) error {
	if m.Exists(ctx, key) {
		return ErrConflict
	}
	return m.put(ctx, key, data, contentType)
}

func (m *MinioClient) Update(ctx context.Context, key string, data []byte, contentType string) error {
	return m.put(ctx, key, data, contentType)
}

func (m *MinioClient) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

func (m *MinioClient) Get(ctx context.Context, key string) ([]byte, error) {
	object, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

func (m *MinioClient) Delete(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (m *MinioClient) Exists(ctx context.Context, key string) bool {
	_, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	return err == nil
}

func (m *MinioClient) PublicURL(key string) string {
	return fmt.Sprintf("https://%s/%s/%s", m.endpoint, m.bucket, key)
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"library-api/internal/config"
)

// MinIOArchive implements Archive backed by a MinIO bucket. Containers map
// to key prefixes inside the bucket.
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

func NewMinIOArchive(cfg config.MinIOConfig) (*MinIOArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOArchive{client: client, bucket: cfg.Bucket}, nil
}

var _ Archive = (*MinIOArchive)(nil)

func (s *MinIOArchive) Store(ctx context.Context, container string, file File) (string, error) {
	key := fmt.Sprintf("%s/%s%s", container, uuid.New(), path.Ext(file.Name))

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(file.Data),
		int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: file.ContentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)

	return url, nil
}

func (s *MinIOArchive) Remove(ctx context.Context, url, container string) error {
	if url == "" {
		return nil
	}

	// The object name is the last path segment; rebuild the key from it so
	// stale URLs pointing at an old endpoint still resolve.
	key := fmt.Sprintf("%s/%s", container, path.Base(url))

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *MinIOArchive) Edit(ctx context.Context, oldURL, container string, file File) (string, error) {
	if err := s.Remove(ctx, oldURL, container); err != nil {
		return "", err
	}
	return s.Store(ctx, container, file)
}

package store

import (
	"bytes"
	"context"
	"fmt"
	"mime"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStore uploads vehicle images to an S3-compatible media host and hands
// back publicly addressable URLs.
type MediaStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMediaStore builds the client and ensures the bucket exists.
// publicURL overrides the base under which uploaded objects are reachable;
// when empty the endpoint itself is used.
func NewMediaStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, publicURL string) (*MediaStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("media bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("media make bucket: %w", err)
		}
	}

	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, endpoint)
	}
	return &MediaStore{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// Upload stores the buffer under a random object key and returns the
// host-assigned canonical URL. No retry on failure.
func (s *MediaStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	key := "vehicles/" + uuid.New().String() + extensionFor(contentType)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("media upload: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

func extensionFor(contentType string) string {
	// mime returns e.g. [".jpe" ".jpeg" ".jpg"]; any of them serves, the key
	// just needs a recognizable suffix.
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[len(exts)-1]
}

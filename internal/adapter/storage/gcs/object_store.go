// Package gcs stores verification documents in a Google Cloud Storage
// bucket. The bucket is private; object URLs are dereferenced by the
// back-office review tooling, never by sellers.
package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ObjectStore implements ports.ObjectStore backed by a GCS bucket.
type ObjectStore struct {
	client *storage.Client
	bucket string
}

// NewClient creates a Google Cloud Storage client. If credsPath is empty,
// application default credentials are used.
func NewClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// NewObjectStore creates an ObjectStore writing into the given bucket.
func NewObjectStore(client *storage.Client, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

// Upload streams r into bucket/objectPath and returns the object URL.
// Writing to an existing path overwrites it, which is how document
// re-uploads replace the prior file.
func (s *ObjectStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files

	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("writing object %s: %w", objectPath, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("closing object %s: %w", objectPath, err)
	}

	return objectURL(s.bucket, objectPath), nil
}

func objectURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

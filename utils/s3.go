package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// PhotoStore uploads profile pictures to S3 and deletes replaced ones. The
// returned key is stored on the member so the object can be removed later.
type PhotoStore struct {
	client    *s3.Client
	bucket    string
	baseURL   string
	keyPrefix string
}

func NewPhotoStore(client *s3.Client, bucket, baseURL, keyPrefix string) *PhotoStore {
	return &PhotoStore{
		client:    client,
		bucket:    bucket,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		keyPrefix: strings.Trim(keyPrefix, "/"),
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	}
	return ""
}

// Upload stores the image bytes under a fresh key and returns the key and the
// public URL.
func (p *PhotoStore) Upload(ctx context.Context, data []byte, contentType string) (string, string, error) {
	ext := extensionFor(contentType)
	if ext == "" {
		return "", "", fmt.Errorf("unsupported content type %q", contentType)
	}

	key := fmt.Sprintf("%s/%s%s", p.keyPrefix, uuid.NewString(), ext)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return key, fmt.Sprintf("%s/%s", p.baseURL, key), nil
}

// Delete removes an object by key. An empty key is a no-op so callers can
// pass whatever is stored without checking first.
func (p *PhotoStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	return err
}

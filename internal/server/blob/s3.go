package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/verifeed/verifeed/internal/common"
)

// S3Store is the S3-backed blob store.
type S3Store struct {
	client       *s3.Client
	region       string
	baseEndpoint string
}

// NewS3Store builds an S3 client for the given region. Empty credentials
// fall back to the SDK's default provider chain. A non-empty baseEndpoint
// points the client at an S3-compatible backend (MinIO and the like) and
// switches to path-style addressing.
func NewS3Store(ctx context.Context, region, accessKey, secretKey, baseEndpoint string) (*S3Store, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if accessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if baseEndpoint != "" {
			o.BaseEndpoint = aws.String(baseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:       client,
		region:       region,
		baseEndpoint: strings.TrimSuffix(baseEndpoint, "/"),
	}, nil
}

// Put uploads an object and returns its public URL.
func (s *S3Store) Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrBlobStore, err)
	}

	return s.ObjectURL(bucket, key), nil
}

// ObjectURL returns the public URL under which a stored object is reachable.
func (s *S3Store) ObjectURL(bucket, key string) string {
	if s.baseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.baseEndpoint, bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, key)
}

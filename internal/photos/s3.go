package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of *s3.Client the store calls.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store implements Store on AWS S3 or any S3 compatible service (MinIO,
// LocalStack).
type S3Store struct {
	client   s3API
	bucket   string
	base     *url.URL
	maxBytes int64
	now      func() time.Time
}

// NewS3Store creates an S3 backed photo store. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain applies.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("photo bucket is required for S3 storage")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	base, err := mustParseBase(s3BaseURL(cfg, region))
	if err != nil {
		return nil, err
	}
	return newS3Store(client, cfg.Bucket, base, cfg.MaxUploadBytes), nil
}

func newS3Store(client s3API, bucket string, base *url.URL, maxBytes int64) *S3Store {
	return &S3Store{client: client, bucket: bucket, base: base, maxBytes: maxBytes, now: time.Now}
}

// s3BaseURL picks the URL prefix objects are served from.
func s3BaseURL(cfg Config, region string) string {
	switch {
	case cfg.PublicBaseURL != "":
		return cfg.PublicBaseURL
	case cfg.Endpoint != "":
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}
}

// Upload puts the photo into the bucket and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, data []byte, originalName string) (string, error) {
	up, err := prepare(data, originalName, s.maxBytes, s.now())
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(up.key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(up.contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put failed: %w", err)
	}
	return publicURL(s.base, up.key), nil
}

// Delete removes the object behind photoURL. S3 reports success for missing
// keys; NoSuchKey from compatible services is treated the same way.
func (s *S3Store) Delete(ctx context.Context, photoURL string) error {
	key, err := keyFromURL(s.base, photoURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	var noKey *types.NoSuchKey
	if err != nil && !errors.As(err, &noKey) {
		return fmt.Errorf("s3 delete failed for %s: %w", key, err)
	}
	return nil
}

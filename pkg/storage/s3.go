package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"ophelia-market/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage uploads to Amazon S3 or any S3-compatible endpoint.
type S3Storage struct {
	uploader      *manager.Uploader
	bucket        string
	region        string
	endpoint      string
	publicBaseURL string
}

// NewS3Storage loads the default AWS credential chain and builds a client.
// A custom endpoint switches to path-style addressing.
func NewS3Storage(ctx context.Context, config utils.StorageConfig) (*S3Storage, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(config.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		uploader:      manager.NewUploader(client),
		bucket:        config.Bucket,
		region:        config.Region,
		endpoint:      strings.TrimRight(config.Endpoint, "/"),
		publicBaseURL: strings.TrimRight(config.PublicBaseURL, "/"),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, input *UploadInput) error {
	putInput := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(input.Key),
		Body:   input.Data,
	}
	if input.ContentType != "" {
		putInput.ContentType = aws.String(input.ContentType)
	}

	if _, err := s.uploader.Upload(ctx, putInput); err != nil {
		return fmt.Errorf("upload %s: %w", input.Key, err)
	}
	return nil
}

// PublicURL prefers the configured public base (a CDN or bucket website),
// then the custom endpoint, then the virtual-hosted AWS URL.
func (s *S3Storage) PublicURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	escaped := (&url.URL{Path: key}).EscapedPath()

	switch {
	case s.publicBaseURL != "":
		return s.publicBaseURL + "/" + escaped, nil
	case s.endpoint != "":
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped), nil
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped), nil
	}
}

var _ Storage = (*S3Storage)(nil)

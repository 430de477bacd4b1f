package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
)

// Archiver stores exported files in object storage and returns where they landed.
type Archiver interface {
	Archive(ctx context.Context, key, contentType string, content []byte) (string, error)
}

type s3Archiver struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Archiver builds an Archiver for any S3-compatible endpoint, R2 included.
func NewS3Archiver(ctx context.Context, cfg config.StorageConfig) (Archiver, error) {
	if !cfg.Enabled() {
		return nil, errors.New("invalid export storage configuration: bucket and credentials are required")
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Archiver{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
	}, nil
}

func (a *s3Archiver) Archive(ctx context.Context, key, contentType string, content []byte) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object (key: %s): %w", key, err)
	}
	return publicURL(a.publicBaseURL, a.bucket, key), nil
}

// publicURL joins base and key; without a base it falls back to an s3:// URI.
func publicURL(base, bucket, key string) string {
	if base == "" {
		return fmt.Sprintf("s3://%s/%s", bucket, key)
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Sprintf("s3://%s/%s", bucket, key)
	}
	return u.JoinPath(strings.TrimPrefix(key, "/")).String()
}

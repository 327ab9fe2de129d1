// Package images stores entry images in an S3-compatible bucket and builds
// their public retrieval URLs.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/dmitrijs2005/grandboard/internal/common"
)

// Storage is the object-store surface used by the reconciler.
type Storage interface {
	// Upload stores body under path without overwriting and returns its public URL.
	Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, path string) error
}

// Config holds the S3 settings.
type Config struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
	// PublicBaseURL prefixes public object URLs; BaseEndpoint when empty.
	PublicBaseURL string
}

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Storage implements Storage on aws-sdk-go-v2.
type S3Storage struct {
	client s3API
	cfg    Config
}

// NewS3Storage builds a path-style client with static credentials.
func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.RootUser,
			cfg.RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Storage{client: client, cfg: cfg}, nil
}

func (s *S3Storage) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(path),
		Body:        body,
		IfNoneMatch: aws.String("*"),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		if isPreconditionFailed(err) {
			return "", fmt.Errorf("%s: %w", path, common.ErrObjectExists)
		}
		return "", fmt.Errorf("put object %s: %w", path, err)
	}
	return s.PublicURL(path), nil
}

func (s *S3Storage) Remove(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", path, err)
	}
	return nil
}

// PublicURL returns <base>/<bucket>/<path>.
func (s *S3Storage) PublicURL(path string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		base = s.cfg.BaseEndpoint
	}
	return strings.TrimRight(base, "/") + "/" + s.cfg.Bucket + "/" + strings.TrimLeft(path, "/")
}

func isPreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return true
		}
	}
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusPreconditionFailed {
		return true
	}
	return false
}

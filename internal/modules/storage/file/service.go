// Package file uploads editor images to S3-compatible object storage and
// hands back the public URL the article embeds.
package file

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/awqat-travel/core/internal/config"
	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"go.uber.org/zap"
)

type Service struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

// NewService builds the uploader from config. Returns nil when the bucket or
// credentials are missing; callers treat that as "uploads disabled".
func NewService(cfg config.S3Config, logger *zap.Logger) *Service {
	if strings.TrimSpace(cfg.Bucket) == "" ||
		strings.TrimSpace(cfg.AccessKeyID) == "" ||
		strings.TrimSpace(cfg.SecretAccessKey) == "" {
		return nil
	}

	opts := s3.Options{
		Region: strings.TrimSpace(cfg.Region),
		Credentials: credentials.NewStaticCredentialsProvider(
			strings.TrimSpace(cfg.AccessKeyID),
			strings.TrimSpace(cfg.SecretAccessKey),
			"",
		),
		UsePathStyle: cfg.PathStyleAccess,
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts.BaseEndpoint = aws.String(strings.TrimRight(endpoint, "/"))
		// Custom endpoints are almost always MinIO-style hosts without
		// per-bucket DNS.
		opts.UsePathStyle = true
	}

	return &Service{
		client:        s3.New(opts),
		bucket:        strings.TrimSpace(cfg.Bucket),
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		logger:        logger,
	}
}

// Upload validates and stores one image, returning its public URL.
func (s *Service) Upload(ctx context.Context, originalName string, payload []byte, contentTypeHint string) (string, error) {
	if err := validateImageFile(originalName, int64(len(payload))); err != nil {
		return "", err
	}

	key := buildObjectKey(originalName, time.Now())
	contentType := detectContentType(originalName, payload, contentTypeHint)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Warn("image upload failed",
			zap.String("key", key),
			zap.Error(err))
		return "", apperrors.Remote("فشل رفع الصورة", err)
	}

	return s.publicURL(key), nil
}

func (s *Service) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return "https://" + s.bucket + ".s3.amazonaws.com/" + key
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/devfolio/portfolio-api/pkg/circuitbreaker"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const s3Backend = "s3"

// S3Config configures an S3-compatible bucket
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string // empty for AWS itself
	Region          string
	PublicBaseURL   string // CDN or bucket website in front of the bucket
	MaxImageBytes   int64
}

// S3Client stores images in an S3-compatible bucket
type S3Client struct {
	validator
	s3Client   *s3.Client
	breaker    *gobreaker.CircuitBreaker
	bucketName string
	publicBase string
}

// NewS3Client creates a new S3-compatible storage client
func NewS3Client(cfg S3Config) (*S3Client, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	logger.Info("S3 storage client initialized",
		zap.String("bucket", cfg.BucketName),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("region", cfg.Region),
	)

	return &S3Client{
		validator:  newValidator(cfg.MaxImageBytes),
		s3Client:   s3.New(opts),
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig("s3_storage")),
		bucketName: cfg.BucketName,
		publicBase: publicBaseURL(cfg),
	}, nil
}

// publicBaseURL returns the URL prefix objects are served under
func publicBaseURL(cfg S3Config) string {
	switch {
	case cfg.PublicBaseURL != "":
		return cfg.PublicBaseURL
	case cfg.Endpoint != "":
		return fmt.Sprintf("%s/%s", cfg.Endpoint, cfg.BucketName)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.BucketName, cfg.Region)
	}
}

func recordStorage(operation, status string, start time.Time) float64 {
	duration := metrics.MeasureDuration(start)
	metrics.StorageRequestDuration.WithLabelValues(s3Backend, operation, status).Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(s3Backend, operation, status).Inc()
	return duration
}

// Upload puts the object into the bucket and returns its public URL
func (s *S3Client) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	start := time.Now()
	operation := "putObject"

	_, err := circuitbreaker.Execute(s.breaker, func() (*s3.PutObjectOutput, error) {
		return s.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(normalizeContentType(contentType)),
		})
	})
	if err != nil {
		duration := recordStorage(operation, "error", start)
		logger.LogAPICall(ctx, "s3_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	duration := recordStorage(operation, "success", start)
	logger.LogAPICall(ctx, "s3_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(data)),
	)

	return s.publicBase + "/" + key, nil
}

// Delete removes the object behind url from the bucket
func (s *S3Client) Delete(ctx context.Context, url string) error {
	key, ok := keyFromURL(s.publicBase, url)
	if !ok {
		return ErrNotOwned
	}

	start := time.Now()
	operation := "deleteObject"

	_, err := circuitbreaker.Execute(s.breaker, func() (*s3.DeleteObjectOutput, error) {
		return s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucketName),
			Key:    aws.String(key),
		})
	})
	if err != nil {
		duration := recordStorage(operation, "error", start)
		logger.LogAPICall(ctx, "s3_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	duration := recordStorage(operation, "success", start)
	logger.LogAPICall(ctx, "s3_storage", operation, "success", duration, zap.String("key", key))
	return nil
}

// Owns reports whether url was issued by this bucket under prefix
func (s *S3Client) Owns(url, prefix string) bool {
	return ownsKey(s.publicBase, url, prefix)
}

// Package archive keeps a copy of detected scan images in object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofrs/uuid/v5"
)

// Archiver stores scan images and returns the object key.
type Archiver interface {
	Put(ctx context.Context, scanID uuid.UUID, image []byte) (string, error)
}

// Nop discards images; keys are empty.
type Nop struct{}

func (Nop) Put(context.Context, uuid.UUID, []byte) (string, error) { return "", nil }

// S3Config describes the bucket and credentials. Empty keys fall back to the
// default AWS credential chain.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string // optional, e.g. a MinIO URL
	AccessKey    string
	SecretKey    string
}

type putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads images to an S3-compatible bucket.
type S3 struct {
	client putter
	bucket string
	now    func() time.Time
}

// NewS3 builds an S3 archiver from cfg.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive: bucket is required")
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("archive: aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return newS3(client, cfg.Bucket), nil
}

func newS3(c putter, bucket string) *S3 { return &S3{client: c, bucket: bucket, now: time.Now} }

// Key returns the object key for a scan image captured at t.
func Key(t time.Time, scanID uuid.UUID) string {
	t = t.UTC()
	return fmt.Sprintf("scans/%04d/%02d/%02d/%s.jpg", t.Year(), t.Month(), t.Day(), scanID)
}

// Put uploads image under a date-partitioned key.
func (a *S3) Put(ctx context.Context, scanID uuid.UUID, image []byte) (string, error) {
	key := Key(a.now(), scanID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(http.DetectContentType(image)),
	})
	if err != nil {
		return "", fmt.Errorf("archive: put %s: %w", key, err)
	}
	return key, nil
}

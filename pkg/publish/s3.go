package publish

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/diorama-raytracer/pkg/config"
	"github.com/df07/diorama-raytracer/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// NewS3Client creates an S3 client for the configured endpoint. Static
// credentials are used when given, otherwise the default AWS chain applies.
func NewS3Client(cfg config.S3Config) (s3iface.S3API, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return s3.New(sess), nil
}

// Publisher uploads finished renders to a bucket
type Publisher struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewPublisher creates a publisher writing under prefix in bucket
func NewPublisher(client s3iface.S3API, bucket, prefix string, logger core.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Key returns the object key a file name is published under
func (p *Publisher) Key(name string) string {
	return path.Join(p.prefix, name)
}

// PublishPNG encodes img as PNG, uploads it as name and returns the object key
func (p *Publisher) PublishPNG(ctx context.Context, name string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	key := p.Key(name)
	if err := p.Upload(ctx, key, buf.Bytes(), "image/png"); err != nil {
		return "", err
	}
	return key, nil
}

// Upload puts data at key
func (p *Publisher) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if p.logger != nil {
		p.logger.Printf("Uploaded %s to s3://%s (%d bytes)", key, p.bucket, size)
	}
	return nil
}

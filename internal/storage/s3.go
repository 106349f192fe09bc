package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads objects to a bucket. Objects are keyed products/<file>; the
// returned reference is publicPrefix/products/<file>, usually fronted by a CDN.
type S3 struct {
	client       putObjectAPI
	bucket       string
	publicPrefix string
}

func NewS3(ctx context.Context, region, bucket, publicPrefix string) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return newS3(s3.NewFromConfig(cfg), bucket, publicPrefix), nil
}

func newS3(client putObjectAPI, bucket, publicPrefix string) *S3 {
	return &S3{client: client, bucket: bucket, publicPrefix: publicPrefix}
}

func (s *S3) Put(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}

	file := objectName(name)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(path.Join(productsDir, file)),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("uploading to s3: %w", err)
	}

	return publicRef(s.publicPrefix, file), nil
}

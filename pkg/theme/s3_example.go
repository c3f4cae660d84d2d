//go:build s3example
// +build s3example

// This file provides an example S3Store implementation.
// It is excluded from regular builds because it requires AWS credentials
// at runtime.
//
// To use this in your project, copy this file and add the AWS SDK:
//   go get github.com/aws/aws-sdk-go-v2
//   go get github.com/aws/aws-sdk-go-v2/config
//   go get github.com/aws/aws-sdk-go-v2/service/s3

package theme

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store publishes stylesheets to an S3 bucket, typically fronted by a
// CDN.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := theme.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "themes/")
//	location, err := theme.Publish(theme.Material(), store)
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates a new S3 stylesheet store.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) key(name string) string {
	return s.prefix + name + ".css"
}

// Put uploads the CSS and returns its s3:// location.
func (s *S3Store) Put(name string, css []byte) (string, error) {
	key := s.key(name)
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(css),
		ContentType: aws.String("text/css"),
	})
	if err != nil {
		return "", fmt.Errorf("theme: s3 put %s: %w", key, err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// Open downloads a stored stylesheet.
func (s *S3Store) Open(name string) ([]byte, error) {
	out, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, fmt.Errorf("theme: s3 get %s: %w", s.key(name), err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

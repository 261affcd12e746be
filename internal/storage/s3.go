// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client for
// campaign assets: browser uploads through presigned PUT URLs and
// server-side uploads of generated images. It wraps the AWS SDK v2 and is
// configured for path-style access (required by CEPH/Hetzner).
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"marketops/internal/config"
)

// DefaultPresignTTL applies when the configuration leaves the TTL unset.
const DefaultPresignTTL = 15 * time.Minute

// Client wraps an S3 client bound to the asset bucket.
type Client struct {
	s3         *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	endpoint   string
	publicURL  string // optional CDN/direct URL for public files
	presignTTL time.Duration
}

// PresignedUpload is what a browser needs to PUT a file straight to storage.
type PresignedUpload struct {
	Method    string      `json:"method"`
	URL       string      `json:"url"`
	Headers   http.Header `json:"headers"`
	Key       string      `json:"key"`
	PublicURL string      `json:"public_url"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if the endpoint or credentials are empty, allowing the app to
// start without storage.
func New(cfg config.S3Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, nil
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = DefaultPresignTTL
	}

	return &Client{
		s3:         s3Client,
		presigner:  s3.NewPresignClient(s3Client),
		bucket:     cfg.Bucket,
		endpoint:   endpoint,
		publicURL:  strings.TrimRight(cfg.PublicURL, "/"),
		presignTTL: ttl,
	}, nil
}

// ObjectKey builds a collision-free key for an account's asset, e.g.
// "acme/uploads/<uuid>.png".
func ObjectKey(accountID, folder, ext string) string {
	return accountID + "/" + folder + "/" + uuid.NewString() + ext
}

// Upload stores a publicly readable object.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// PresignPut signs a PUT for key that only accepts the given content type
// and length.
func (c *Client) PresignPut(ctx context.Context, key, contentType string, size int64) (*PresignedUpload, error) {
	req, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		ACL:           s3types.ObjectCannedACLPublicRead,
	}, s3.WithPresignExpires(c.presignTTL))
	if err != nil {
		return nil, fmt.Errorf("s3 presign put %s/%s: %w", c.bucket, key, err)
	}

	headers := req.SignedHeader.Clone()
	headers.Del("Host")
	return &PresignedUpload{
		Method:    req.Method,
		URL:       req.URL,
		Headers:   headers,
		Key:       key,
		PublicURL: c.FileURL(key),
		ExpiresAt: time.Now().Add(c.presignTTL).UTC(),
	}, nil
}

// Delete removes an object.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL for a key.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// Bucket returns the asset bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

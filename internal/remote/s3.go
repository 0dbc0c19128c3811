// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package remote fetches s3:// inputs to local temp files so the loader can
// treat every input as a plain path. CI pipelines commonly stage the baseline
// artifact in a bucket rather than the working tree.
package remote

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/geodiff/geodiff/internal/log"
	"github.com/geodiff/geodiff/internal/tmputil"
)

// IsS3 reports whether the input path is an s3:// URI.
func IsS3(p string) bool {
	return strings.HasPrefix(p, "s3://")
}

// parseURI splits s3://bucket/key into its parts.
func parseURI(uri string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(uri, "s3://")
	bucket, key, found := strings.Cut(trimmed, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 uri: %s", uri)
	}
	return bucket, key, nil
}

// options holds optional overrides for AWS config loading. Default behavior
// (no options) inherits the shell environment and shared config chain
// (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type options struct {
	profile string
	region  string
}

// Option customizes how AWS config is loaded.
type Option func(*options)

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// Fetch downloads an s3:// object to a temp file carrying the object's
// extension and returns the local path. The caller owns cleanup via
// tmputil.Remove.
func Fetch(ctx context.Context, uri string, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	bucket, key, err := parseURI(uri)
	if err != nil {
		return "", err
	}

	var loadOpts []func(*awscfg.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, awscfg.WithRegion(o.region))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3v2.NewFromConfig(cfg)

	obj, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", uri, err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", uri, err)
	}
	log.Debugf("fetched %s: %d bytes", uri, len(data))

	return tmputil.WriteFile(path.Ext(key), data)
}

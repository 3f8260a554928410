package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mitchellh/goamz/aws"
	"github.com/mitchellh/goamz/s3"
)

var errImageTooLarge = errors.New("image exceeds maxImageSize")

// imageSource loads original images from Amazon S3 or plain http urls and
// keeps them in an upstream cache.
type imageSource struct {
	cache        bytesCache
	bucket       *s3.Bucket
	client       *http.Client
	maxImageSize int64
	ttl          time.Duration
}

// fetch returns the image stored under imageURL. Urls starting with "s3:"
// name a key in the configured bucket.
func (src *imageSource) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	if blob, ok := src.cache.get(imageURL); ok {
		return blob, nil
	}

	var blob []byte
	var err error
	if key, ok := strings.CutPrefix(imageURL, "s3:"); ok {
		blob, err = src.fetchS3(key)
	} else {
		blob, err = src.fetchHTTP(ctx, imageURL)
	}
	if err != nil {
		return nil, err
	}

	src.cache.set(imageURL, blob, int32(src.ttl/time.Second))
	return blob, nil
}

func (src *imageSource) fetchS3(key string) ([]byte, error) {
	if src.bucket == nil {
		return nil, fmt.Errorf("cannot fetch key=[%s]: no S3 bucket configured", key)
	}
	blob, err := src.bucket.Get(key)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch image by key=[%s] from Amazon S3: %w", key, err)
	}
	if int64(len(blob)) > src.maxImageSize {
		return nil, errImageTooLarge
	}
	return blob, nil
}

func (src *imageSource) fetchHTTP(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid imageUrl=%v: %w", imageURL, err)
	}
	resp, err := src.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot load image from imageUrl=%v: %w", imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected StatusCode=%d returned from imageUrl=%v", resp.StatusCode, imageURL)
	}
	blob, err := io.ReadAll(io.LimitReader(resp.Body, src.maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("error when reading image body from imageUrl=%v: %w", imageURL, err)
	}
	if int64(len(blob)) > src.maxImageSize {
		return nil, errImageTooLarge
	}
	return blob, nil
}

func getS3Bucket(cfg s3Config) (*s3.Bucket, error) {
	auth := aws.Auth{
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	}
	region, ok := aws.Regions[cfg.Region]
	if !ok {
		return nil, fmt.Errorf("unknown s3Region: %s", cfg.Region)
	}
	connection := s3.New(auth, region)
	return connection.Bucket(cfg.Bucket), nil
}

package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"artag/internal/artag"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store stores media objects in an S3 bucket. Objects are keyed as
// "<prefix>/<folder>/<name>" and public URLs are formed by joining baseURL
// with the object key, so the bucket (or a CDN in front of it) must serve
// the keys at that base URL.
type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
	baseURL  string
}

// NewS3Store creates a media store backed by the given S3 bucket.
// When accessKeyID is empty, credentials come from the default AWS
// credential chain.
func NewS3Store(ctx context.Context, bucket, prefix, region, baseURL, accessKeyID, secretAccessKey string) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *S3Store) key(folder, name string) string {
	key := folder + "/" + name
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	return key
}

// PutObject uploads an object and returns its public URL.
// size is advisory only; the uploader streams the reader directly.
func (s *S3Store) PutObject(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error) {
	if err := validateObjectPath(folder, name); err != nil {
		return "", err
	}

	key := s.key(folder, name)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// DeleteObject removes the object behind a public URL previously returned
// by PutObject.
func (s *S3Store) DeleteObject(ctx context.Context, publicURL string) error {
	key, ok := strings.CutPrefix(publicURL, s.baseURL+"/")
	if !ok {
		return fmt.Errorf("url %q is not served by this store", publicURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ValidateSetup verifies that the bucket exists and is reachable.
func (s *S3Store) ValidateSetup() error {
	_, err := s.client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %s not accessible: %w", s.bucket, err)
	}
	return nil
}

// Compile-time check that S3Store implements artag.MediaStore
var _ artag.MediaStore = (*S3Store)(nil)

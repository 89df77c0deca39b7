package media

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go-food-ordering/apperrors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader stores images under foods/ in a bucket served from publicURL.
type S3Uploader struct {
	uploader  *manager.Uploader
	bucket    string
	publicURL string
}

func NewS3Uploader(ctx context.Context, bucket, publicURL string) (*S3Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required for the s3 media provider")
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
	}
	return &S3Uploader{
		uploader:  manager.NewUploader(s3.NewFromConfig(cfg)),
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, file File) (string, error) {
	key := objectKey(file.Name)
	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   file.Body,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if _, err := u.uploader.Upload(ctx, input); err != nil {
		return "", apperrors.Upload("Upload Error", err)
	}
	return u.publicURL + "/" + key, nil
}

func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "foods/" + uuid.NewString() + ext
}

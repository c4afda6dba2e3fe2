package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appConfig "github.com/servergreen991/designer-mom/config"
	"github.com/servergreen991/designer-mom/utils"
)

// ImageStore places a rendered preview somewhere durable and returns the
// URL the order should carry.
type ImageStore interface {
	StoreImage(ctx context.Context, dataURL string) (string, error)
}

// PassthroughImageStore keeps previews inline as data URLs, exactly what
// the collaborator returned. Used when no bucket is configured.
type PassthroughImageStore struct{}

// StoreImage returns the data URL unchanged.
func (PassthroughImageStore) StoreImage(ctx context.Context, dataURL string) (string, error) {
	return dataURL, nil
}

// S3ImageStore offloads preview images to an S3 bucket and hands back
// presigned URLs.
type S3ImageStore struct {
	client *s3.Client
	bucket string
}

// NewS3ImageStore initializes the S3-backed image store with AWS
// credentials from configuration.
func NewS3ImageStore(ctx context.Context, cfg *appConfig.Config) (*S3ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3ImageStore{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.AWSS3Bucket,
	}, nil
}

// StoreImage uploads the decoded preview bytes under a fresh key and
// returns a presigned URL valid for 1 hour.
func (s *S3ImageStore) StoreImage(ctx context.Context, dataURL string) (string, error) {
	mimeType, data, err := utils.ParseDataURL(dataURL)
	if err != nil {
		return "", fmt.Errorf("invalid preview image: %w", err)
	}

	key := fmt.Sprintf("previews/%s%s", uuid.NewString(), utils.ExtForMIME(mimeType))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload preview to S3: %w", err)
	}

	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	log.Printf("Stored preview image under key %s", key)
	return request.URL, nil
}

package objstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store holds the S3 client for a MinIO-compatible object store. Media
// bytes never transit this server; uploads go straight to the store via
// presigned URLs.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
}

func New(ctx context.Context, endpoint string, region string, accessKey string, secretKey string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load object store config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	slog.Info("object store configured", "endpoint", endpoint)
	return &Store{client: client, presign: s3.NewPresignClient(client)}, nil
}

func (s *Store) PresignClient() *s3.PresignClient {
	return s.presign
}

func (s *Store) Health(ctx context.Context) error {
	_, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	return err
}

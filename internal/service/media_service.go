package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"minisocial/internal/model"
)

const (
	mediaKeyPrefix = "media/"
	presignExpiry  = 15 * time.Minute
)

type uploadPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// MediaService hands out presigned PUT URLs so clients upload media
// directly to the object store.
type MediaService struct {
	presigner uploadPresigner
	bucket    string
}

func NewMediaService(presigner uploadPresigner, bucket string) *MediaService {
	return &MediaService{presigner: presigner, bucket: bucket}
}

func (s *MediaService) PresignUpload(ctx context.Context) (model.PresignResponse, error) {
	key := mediaKeyPrefix + uuid.NewString()

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return model.PresignResponse{}, fmt.Errorf("presign upload: %w", err)
	}

	return model.PresignResponse{MediaKey: key, UploadURL: req.URL}, nil
}

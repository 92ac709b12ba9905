package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadService generates presigned S3 PUT URLs so product images are
// uploaded directly to the bucket, never proxied through the API.
type UploadService struct {
	presign   *s3.PresignClient
	bucket    string
	prefix    string
	endpoint  string
	cdnDomain string
}

func NewUploadService(presign *s3.PresignClient, bucket, prefix, endpoint, cdnDomain string) *UploadService {
	return &UploadService{
		presign:   presign,
		bucket:    bucket,
		prefix:    prefix,
		endpoint:  endpoint,
		cdnDomain: cdnDomain,
	}
}

// PresignUpload returns the upload URL, the object key and the public
// URL the image will be served from.
func (s *UploadService) PresignUpload(ctx context.Context, productID uuid.UUID, filename, contentType string, expiresSeconds int64) (string, string, string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%sproduct_img_%s_%s%s", s.prefix, productID, uuid.New().String(), ext)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presignedReq, err := s.presign.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(expiresSeconds) * time.Second
	})
	if err != nil {
		return "", "", "", fmt.Errorf("presign put object: %w", err)
	}

	var publicURL string
	switch {
	case s.cdnDomain != "":
		publicURL = fmt.Sprintf("https://%s/%s", strings.TrimRight(s.cdnDomain, "/"), key)
	case s.endpoint != "":
		publicURL = fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	default:
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	}

	return presignedReq.URL, key, publicURL, nil
}

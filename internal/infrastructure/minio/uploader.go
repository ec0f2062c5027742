package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"photovault/pkg/logger"
)

type Uploader struct {
	minioClient *minio.Client
	bucket      string
	cfg         *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: client.MinioClient,
		bucket:      client.Bucket,
		cfg:         cfg,
	}
}

// Upload stores the payload under users/{owner}/images/{imageID} and returns
// the object's retrieval URL.
func (u *Uploader) Upload(ctx context.Context, owner, imageID string, body io.Reader, size int64,
	contentType string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	key := objectKey(owner, imageID)

	info, err := u.minioClient.PutObject(ctx, u.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.Error("blob upload failed", "key", key, "err", err)

		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", u.minioClient.EndpointURL(), info.Bucket, info.Key), nil
}

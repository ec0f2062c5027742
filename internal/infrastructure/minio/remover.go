package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"photovault/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	bucket      string
	cfg         *RemoverConfig
}

func NewRemover(client *Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: client.MinioClient,
		bucket:      client.Bucket,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, owner, imageID string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	key := objectKey(owner, imageID)

	err := r.minioClient.RemoveObject(ctx, r.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("blob remove failed", "key", key, "err", err)

		return err
	}

	return nil
}

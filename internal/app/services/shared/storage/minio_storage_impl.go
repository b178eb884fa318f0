package storage

import (
	"context"
	"io"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioFailedToEnsureBucket(err)
	}
	if exists {
		return nil
	}
	if err := m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
		return exceptions.ErrMinioFailedToEnsureBucket(err)
	}
	return nil
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, payload io.Reader, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, payload, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioFailedToUpload(err)
	}

	return objectName, nil
}

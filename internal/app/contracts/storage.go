package contracts

import (
	"context"
	"io"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, payload io.Reader, size int64) (string, error)
	EnsureBucket(ctx context.Context, bucketName string) error
}

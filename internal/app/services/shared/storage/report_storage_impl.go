package storage

import (
	"bytes"
	"context"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioReportStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioReportStorage(minioClient *minio.Client, bucketName string) contracts.ReportStorage {
	return &minioReportStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioReportStorage) UploadReport(ctx context.Context, objectName string, content []byte, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}

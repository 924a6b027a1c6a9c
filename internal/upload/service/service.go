package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type service struct {
	minioClient *minio.Client
	bucketName  string
	logger      *zap.Logger
}

func New(
	minioClient *minio.Client,
	bucketName string,
	logger *zap.Logger,
) *service {
	return &service{
		minioClient: minioClient,
		bucketName:  bucketName,
		logger:      logger,
	}
}

// UploadFile streams the file into the shared bucket under a fresh
// uuid object name and returns that name for persisting on the owning
// record.
func (s *service) UploadFile(ctx context.Context, reader io.Reader, size int64, fileExtension string) (string, error) {
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		s.logger.Error("error checking if bucket exists", zap.Error(err))
		return "", err
	}

	if !exists {
		if err := s.minioClient.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			s.logger.Error("error creating bucket", zap.Error(err))
			return "", err
		}
	}

	objectName := fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension)

	if _, err := s.minioClient.PutObject(
		ctx,
		s.bucketName,
		objectName,
		reader,
		size,
		minio.PutObjectOptions{},
	); err != nil {
		s.logger.Error("error uploading file", zap.Error(err))
		return "", err
	}

	return objectName, nil
}

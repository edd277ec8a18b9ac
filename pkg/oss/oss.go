package oss

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/vidora/vidora/pkg/utils"
)

type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// UploadResult describes a stored object. Duration is only populated for
// video uploads.
type UploadResult struct {
	URL       string
	ObjectKey string
	Duration  float64
}

// Storage is the media-storage capability handed to the services, so tests
// can substitute a fake.
type Storage interface {
	// Upload pushes the staged file to object storage and deletes the local
	// file whether or not the upload succeeded.
	Upload(ctx context.Context, localPath string, kind Kind) (*UploadResult, error)
	Remove(ctx context.Context, objectKey string, kind Kind) error
}

type MinioStorage struct {
	client      *minio.Client
	videoBucket string
	imageBucket string
	publicBase  string
}

func NewMinioStorage(client *minio.Client, videoBucket, imageBucket, publicBase string) *MinioStorage {
	return &MinioStorage{
		client:      client,
		videoBucket: videoBucket,
		imageBucket: imageBucket,
		publicBase:  strings.TrimRight(publicBase, "/"),
	}
}

func (s *MinioStorage) bucketFor(kind Kind) string {
	if kind == KindVideo {
		return s.videoBucket
	}
	return s.imageBucket
}

func (s *MinioStorage) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

var contentTypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

func (s *MinioStorage) Upload(ctx context.Context, localPath string, kind Kind) (*UploadResult, error) {
	// The staged file is temporary either way.
	defer os.Remove(localPath)

	ext := strings.ToLower(filepath.Ext(localPath))
	contentType, ok := contentTypes[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported media format: %s", ext)
	}

	var duration float64
	if kind == KindVideo {
		var err error
		duration, err = utils.GetVideoDuration(localPath)
		if err != nil {
			hlog.Warnf("failed to probe duration for %s: %v", localPath, err)
		}
	}

	bucket := s.bucketFor(kind)
	if err := s.ensureBucket(ctx, bucket); err != nil {
		return nil, err
	}

	objectKey := string(kind) + "/" + uuid.NewString() + ext
	if _, err := s.client.FPutObject(ctx, bucket, objectKey, localPath,
		minio.PutObjectOptions{ContentType: contentType}); err != nil {
		hlog.Errorf("minio upload failed for %s: %v", objectKey, err)
		return nil, err
	}

	return &UploadResult{
		URL:       fmt.Sprintf("%s/%s/%s", s.publicBase, bucket, objectKey),
		ObjectKey: objectKey,
		Duration:  duration,
	}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, objectKey string, kind Kind) error {
	if objectKey == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucketFor(kind), objectKey, minio.RemoveObjectOptions{}); err != nil {
		hlog.Warnf("minio remove failed for %s: %v", objectKey, err)
		return err
	}
	return nil
}

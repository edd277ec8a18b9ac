package oss

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/vidora/vidora/config"
)

// DefaultStorage is the process-wide storage handle wired up by InitMinio.
// Handlers pass it into the services; tests inject a fake instead.
var DefaultStorage Storage

func InitMinio() error {
	cfg := config.ConfigInfo.Minio

	hlog.Infof("Initializing MinIO client with endpoint: %s", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	DefaultStorage = NewMinioStorage(client, cfg.VideoBucket, cfg.ImageBucket, cfg.PublicBaseURL)
	hlog.Info("Connect Minio Success")
	return nil
}

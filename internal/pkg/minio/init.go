package minio

import (
	"Agrilink/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// PostBucket 帖子媒体
	PostBucket string
	// AvatarBucket 用户头像
	AvatarBucket string

	publicBase string
)

// Init 初始化 MinIO 客户端并确保存储桶存在
func Init(cfg config.MinIOConfig) error {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	for _, bucket := range []string{cfg.PostBucket, cfg.AvatarBucket} {
		if err = ensureBucket(ctx, client, bucket); err != nil {
			return err
		}
	}

	Client = client
	PostBucket = cfg.PostBucket
	AvatarBucket = cfg.AvatarBucket
	publicBase = publicBaseURL(cfg)
	return nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if exists {
		return nil
	}
	if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("创建存储桶 %s 失败: %w", bucket, err)
	}
	log.Info("已创建存储桶", "bucket", bucket)
	return nil
}

func publicBaseURL(cfg config.MinIOConfig) string {
	host := cfg.PublicHost
	if host == "" {
		host = cfg.Endpoint
	}
	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s", protocol, host)
}

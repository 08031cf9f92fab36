package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
)

func newTestPageService() (PageService, *mockRepos) {
	repo, mocks := newTestRepository()
	return NewPageService(repo, zap.NewNop()), mocks
}

func TestUpsertPageCreatesThenUpdates(t *testing.T) {
	svc, _ := newTestPageService()

	// 首次保存即创建
	page, err := svc.Upsert(context.Background(), "about", &dto.UpsertPageRequest{
		Title:       "关于我们",
		ContentHtml: "<p>实验室简介</p>",
	})
	if err != nil {
		t.Fatalf("保存失败: %v", err)
	}
	if page.Slug != "about" || page.Title != "关于我们" {
		t.Fatalf("页面内容不符: %+v", page)
	}

	// 同 slug 再次保存即更新
	updated, err := svc.Upsert(context.Background(), "about", &dto.UpsertPageRequest{
		Title:       "关于我们（新版）",
		ContentJson: `{"blocks":[]}`,
	})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Title != "关于我们（新版）" {
		t.Fatalf("更新未生效: %s", updated.Title)
	}

	fresh, err := svc.GetBySlug(context.Background(), "about")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if fresh.Title != "关于我们（新版）" || fresh.ContentJson != `{"blocks":[]}` {
		t.Fatalf("落库内容不符: %+v", fresh)
	}
}

func TestUpsertPageInvalidSlug(t *testing.T) {
	svc, mocks := newTestPageService()

	for _, slug := range []string{"About", "has space", "中文", "-leading", "trailing-", ""} {
		_, err := svc.Upsert(context.Background(), slug, &dto.UpsertPageRequest{Title: "x"})
		if !errors.Is(err, ErrInvalidSlug) {
			t.Fatalf("非法 slug %q 应被拒绝，实际=%v", slug, err)
		}
	}
	if len(mocks.page.pages) != 0 {
		t.Fatal("非法 slug 不应触达存储层")
	}
}

func TestGetPageNotFound(t *testing.T) {
	svc, _ := newTestPageService()

	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("不存在的页面应返回不存在，实际=%v", err)
	}
}

func TestListPagesDegradesToEmpty(t *testing.T) {
	svc, mocks := newTestPageService()
	mocks.page.failing = true

	list := svc.List(context.Background())
	if list == nil || len(list) != 0 {
		t.Fatalf("存储不可用时期望空列表，实际=%v", list)
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/model"
)

func newTestPublicationService() (PublicationService, *mockRepos) {
	repo, mocks := newTestRepository()
	return NewPublicationService(repo, zap.NewNop()), mocks
}

func TestCreatePublicationDefaultsToJournal(t *testing.T) {
	svc, _ := newTestPublicationService()

	pub, err := svc.Create(context.Background(), &dto.CreatePublicationRequest{
		Title: "一篇论文",
		Year:  2024,
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if pub.Type != model.PubTypeJournal {
		t.Fatalf("缺省类型应为 journal，实际=%s", pub.Type)
	}
	if pub.LabMembers == nil || pub.Keywords == nil {
		t.Fatal("数组字段应为空数组而不是 nil")
	}
}

func TestCreatePublicationInvalidType(t *testing.T) {
	svc, _ := newTestPublicationService()

	_, err := svc.Create(context.Background(), &dto.CreatePublicationRequest{
		Title: "一篇论文",
		Year:  2024,
		Type:  "preprint",
	})
	if !errors.Is(err, ErrInvalidPubType) {
		t.Fatalf("非法类型应被拒绝，实际=%v", err)
	}
}

func TestListPublicationsSortedByYearDesc(t *testing.T) {
	svc, _ := newTestPublicationService()

	for _, p := range []struct {
		title string
		year  int
		month int
	}{
		{"老论文", 2020, 6},
		{"新论文", 2024, 3},
		{"同年晚月", 2024, 11},
	} {
		if _, err := svc.Create(context.Background(), &dto.CreatePublicationRequest{
			Title: p.title, Year: p.year, Month: p.month,
		}); err != nil {
			t.Fatalf("创建失败: %v", err)
		}
	}

	list := svc.List(context.Background())
	wantOrder := []string{"同年晚月", "新论文", "老论文"}
	for i, want := range wantOrder {
		if list[i].Title != want {
			t.Fatalf("位置 %d 期望 %s，实际=%s", i, want, list[i].Title)
		}
	}
}

func TestListFeaturedPublications(t *testing.T) {
	svc, _ := newTestPublicationService()

	if _, err := svc.Create(context.Background(), &dto.CreatePublicationRequest{
		Title: "普通", Year: 2024,
	}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreatePublicationRequest{
		Title: "精选", Year: 2024, Featured: true,
	}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	featured := svc.ListFeatured(context.Background())
	if len(featured) != 1 || featured[0].Title != "精选" {
		t.Fatalf("精选列表不符: %v", featured)
	}
}

func TestUpdatePublicationFeaturedToggle(t *testing.T) {
	svc, _ := newTestPublicationService()

	pub, err := svc.Create(context.Background(), &dto.CreatePublicationRequest{
		Title: "一篇论文", Year: 2024, Featured: true,
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	off := false
	updated, err := svc.Update(context.Background(), pub.ID, &dto.UpdatePublicationRequest{Featured: &off})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Featured {
		t.Fatal("取消精选未生效")
	}
}

func TestDeletePublicationNotFound(t *testing.T) {
	svc, _ := newTestPublicationService()

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, ErrPublicationNotFound) {
		t.Fatalf("删除不存在的论文应返回不存在，实际=%v", err)
	}
}

func TestListPublicationsDegradesToEmpty(t *testing.T) {
	svc, mocks := newTestPublicationService()
	mocks.publication.failing = true

	list := svc.List(context.Background())
	if list == nil || len(list) != 0 {
		t.Fatalf("存储不可用时期望空列表，实际=%v", list)
	}
}

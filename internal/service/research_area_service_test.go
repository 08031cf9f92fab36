package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/model"
)

func newTestResearchAreaService() (ResearchAreaService, *mockRepos) {
	repo, mocks := newTestRepository()
	// 研究方向为固定栏目，测试直接种子数据
	mocks.researchArea.areas[1] = &model.ResearchArea{
		ID: 1, NameEn: "Computational Imaging", NameCn: "计算成像", Topics: `["光场"]`, DisplayOrder: 0,
	}
	mocks.researchArea.areas[2] = &model.ResearchArea{
		ID: 2, NameEn: "Microscopy", NameCn: "显微成像", Topics: "[]", DisplayOrder: 1,
	}
	return NewResearchAreaService(repo, zap.NewNop()), mocks
}

func TestUpdateResearchAreaTopics(t *testing.T) {
	svc, mocks := newTestResearchAreaService()

	topics := []string{"光场", "压缩感知"}
	updated, err := svc.Update(context.Background(), 1, &dto.UpdateResearchAreaRequest{Topics: &topics})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if len(updated.Topics) != 2 {
		t.Fatalf("主题数组不符: %v", updated.Topics)
	}
	if mocks.researchArea.areas[1].Topics != `["光场","压缩感知"]` {
		t.Fatalf("存储形态不符: %s", mocks.researchArea.areas[1].Topics)
	}
}

func TestUpdateResearchAreaNotFound(t *testing.T) {
	svc, _ := newTestResearchAreaService()

	name := "x"
	_, err := svc.Update(context.Background(), 42, &dto.UpdateResearchAreaRequest{NameEn: &name})
	if !errors.Is(err, ErrResearchAreaNotFound) {
		t.Fatalf("不存在的研究方向应返回不存在，实际=%v", err)
	}
}

func TestReorderResearchAreas(t *testing.T) {
	svc, _ := newTestResearchAreaService()

	result, err := svc.Reorder(context.Background(), &dto.ReorderResearchAreasRequest{IDs: []int{2, 1}})
	if err != nil {
		t.Fatalf("重排失败: %v", err)
	}
	if result.Updated != 2 {
		t.Fatalf("期望更新 2 条，实际=%d", result.Updated)
	}

	list := svc.List(context.Background())
	if list[0].ID != 2 || list[0].DisplayOrder != 0 {
		t.Fatalf("重排后首位不符: %+v", list[0])
	}
	if list[1].ID != 1 || list[1].DisplayOrder != 1 {
		t.Fatalf("重排后次位不符: %+v", list[1])
	}
}

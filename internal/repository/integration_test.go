//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/szxing21/fiowin-lab-website/internal/model"
	"github.com/szxing21/fiowin-lab-website/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=fiowin password=fiowin_password dbname=fiowin_lab_test sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Member{},
		&model.Publication{},
		&model.News{},
		&model.Conference{},
		&model.ResearchArea{},
		&model.Page{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// seedMembers 创建 n 个成员并返回 id 与清理函数
func seedMembers(t *testing.T, n int) (ids []int, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < n; i++ {
		m := &model.Member{
			NameEn:       fmt.Sprintf("Member %d", i+1),
			NameCn:       fmt.Sprintf("成员%d", i+1),
			Role:         model.RolePhD,
			DisplayOrder: i,
		}
		if err := testDB.WithContext(ctx).Create(m).Error; err != nil {
			t.Fatalf("创建成员失败: %v", err)
		}
		ids = append(ids, m.ID)
	}

	cleanup = func() {
		testDB.Where("id IN ?", ids).Delete(&model.Member{})
	}
	return
}

// ═══════════════════════════════════════════════════════════
// Test: Display Order Rewrite
// ═══════════════════════════════════════════════════════════

func TestMember_UpdateDisplayOrder(t *testing.T) {
	ids, cleanup := seedMembers(t, 3)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	// 倒序重排
	missing, err := repo.Member.UpdateDisplayOrder(ctx, []int{ids[2], ids[1], ids[0]})
	if err != nil {
		t.Fatalf("UpdateDisplayOrder 失败: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("期望无缺失 id，实际=%v", missing)
	}

	// List 应按新顺序返回
	members, err := repo.Member.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	got := make(map[int]int)
	for _, m := range members {
		got[m.ID] = m.DisplayOrder
	}
	if got[ids[2]] != 0 || got[ids[1]] != 1 || got[ids[0]] != 2 {
		t.Errorf("display_order 写入不符: %v", got)
	}
}

func TestMember_UpdateDisplayOrder_MissingIDs(t *testing.T) {
	ids, cleanup := seedMembers(t, 2)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	// 序列中混入不存在的 id，应跳过并报告，其余正常写入
	missing, err := repo.Member.UpdateDisplayOrder(ctx, []int{ids[1], 999999, ids[0]})
	if err != nil {
		t.Fatalf("UpdateDisplayOrder 失败: %v", err)
	}
	if len(missing) != 1 || missing[0] != 999999 {
		t.Errorf("期望缺失 [999999]，实际=%v", missing)
	}

	m0, _ := repo.Member.GetByID(ctx, ids[0])
	m1, _ := repo.Member.GetByID(ctx, ids[1])
	if m1.DisplayOrder != 0 {
		t.Errorf("期望 ids[1] 的 display_order=0，实际=%d", m1.DisplayOrder)
	}
	if m0.DisplayOrder != 2 {
		t.Errorf("期望 ids[0] 的 display_order=2，实际=%d", m0.DisplayOrder)
	}
}

func TestMember_List_TieBreakByID(t *testing.T) {
	ctx := context.Background()

	// 两个成员并列 display_order=0
	var created []int
	for i := 0; i < 2; i++ {
		m := &model.Member{
			NameEn:       fmt.Sprintf("Tie %d", i),
			NameCn:       fmt.Sprintf("并列%d", i),
			Role:         model.RoleMaster,
			DisplayOrder: 0,
		}
		if err := testDB.WithContext(ctx).Create(m).Error; err != nil {
			t.Fatalf("创建成员失败: %v", err)
		}
		created = append(created, m.ID)
	}
	defer testDB.Where("id IN ?", created).Delete(&model.Member{})

	repo := repository.NewRepository(testDB)
	members, err := repo.Member.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}

	// 并列时 id 小者在前
	posOf := func(id int) int {
		for i, m := range members {
			if m.ID == id {
				return i
			}
		}
		return -1
	}
	if posOf(created[0]) > posOf(created[1]) {
		t.Error("display_order 并列时应按 id 升序")
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Hard Delete
// ═══════════════════════════════════════════════════════════

func TestMember_Delete_NotFound(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	err := repo.Member.Delete(ctx, 999999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际=%v", err)
	}
}

func TestMember_Delete_Gone(t *testing.T) {
	ids, cleanup := seedMembers(t, 1)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	if err := repo.Member.Delete(ctx, ids[0]); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	// 硬删除，任何查询都查不到
	if _, err := repo.Member.GetByID(ctx, ids[0]); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("删除后应查不到记录，实际=%v", err)
	}

	var count int64
	testDB.Unscoped().Model(&model.Member{}).Where("id = ?", ids[0]).Count(&count)
	if count != 0 {
		t.Error("硬删除后 Unscoped 也不应查到记录")
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Page Upsert
// ═══════════════════════════════════════════════════════════

func TestPage_Upsert_CreateThenUpdate(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	slug := fmt.Sprintf("about-%d", os.Getpid())
	defer testDB.Where("slug = ?", slug).Delete(&model.Page{})

	// 首次 upsert 创建
	if err := repo.Page.Upsert(ctx, &model.Page{
		Slug:        slug,
		Title:       "关于我们",
		ContentHtml: "<p>v1</p>",
	}); err != nil {
		t.Fatalf("首次 Upsert 失败: %v", err)
	}

	// 同 slug 再次 upsert 更新而非报唯一约束冲突
	if err := repo.Page.Upsert(ctx, &model.Page{
		Slug:        slug,
		Title:       "关于我们（改）",
		ContentHtml: "<p>v2</p>",
	}); err != nil {
		t.Fatalf("二次 Upsert 失败: %v", err)
	}

	page, err := repo.Page.GetBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("GetBySlug 失败: %v", err)
	}
	if page.Title != "关于我们（改）" || page.ContentHtml != "<p>v2</p>" {
		t.Errorf("upsert 未覆盖旧内容: title=%q html=%q", page.Title, page.ContentHtml)
	}

	var count int64
	testDB.Model(&model.Page{}).Where("slug = ?", slug).Count(&count)
	if count != 1 {
		t.Errorf("同 slug 应只有 1 行，实际=%d", count)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Publication Ordering
// ═══════════════════════════════════════════════════════════

func TestPublication_List_YearDesc(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	var created []int
	for _, y := range []int{2022, 2024, 2023} {
		p := &model.Publication{
			Title: fmt.Sprintf("排序测试论文 %d", y),
			Year:  y,
			Type:  model.PubTypeJournal,
		}
		if err := repo.Publication.Create(ctx, p); err != nil {
			t.Fatalf("创建论文失败: %v", err)
		}
		created = append(created, p.ID)
	}
	defer testDB.Where("id IN ?", created).Delete(&model.Publication{})

	pubs, err := repo.Publication.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}

	// 只看本测试创建的三条，应按年份降序
	var years []int
	own := map[int]bool{created[0]: true, created[1]: true, created[2]: true}
	for _, p := range pubs {
		if own[p.ID] {
			years = append(years, p.Year)
		}
	}
	if len(years) != 3 || years[0] != 2024 || years[1] != 2023 || years[2] != 2022 {
		t.Errorf("期望年份降序 [2024 2023 2022]，实际=%v", years)
	}
}

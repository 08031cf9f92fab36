package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/szxing21/fiowin-lab-website/internal/model"
	"github.com/szxing21/fiowin-lab-website/internal/repository"
)

// errStorageDown 模拟底层存储不可用
var errStorageDown = errors.New("存储不可用")

// ── Mock MemberRepository ──

type mockMemberRepo struct {
	members map[int]*model.Member
	nextID  int
	failing bool // true 时所有操作返回 errStorageDown
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[int]*model.Member), nextID: 1}
}

func (m *mockMemberRepo) Create(_ context.Context, member *model.Member) error {
	if m.failing {
		return errStorageDown
	}
	if member.ID == 0 {
		member.ID = m.nextID
		m.nextID++
	}
	cp := *member
	m.members[member.ID] = &cp
	return nil
}

func (m *mockMemberRepo) GetByID(_ context.Context, id int) (*model.Member, error) {
	if m.failing {
		return nil, errStorageDown
	}
	if mem, ok := m.members[id]; ok {
		cp := *mem
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) List(_ context.Context) ([]model.Member, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var result []model.Member
	for _, mem := range m.members {
		result = append(result, *mem)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockMemberRepo) ListByRole(_ context.Context, role string) ([]model.Member, error) {
	all, err := m.List(nil)
	if err != nil {
		return nil, err
	}
	var result []model.Member
	for _, mem := range all {
		if mem.Role == role {
			result = append(result, mem)
		}
	}
	return result, nil
}

func (m *mockMemberRepo) Update(_ context.Context, member *model.Member) error {
	if m.failing {
		return errStorageDown
	}
	cp := *member
	m.members[member.ID] = &cp
	return nil
}

func (m *mockMemberRepo) Delete(_ context.Context, id int) error {
	if m.failing {
		return errStorageDown
	}
	if _, ok := m.members[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.members, id)
	return nil
}

func (m *mockMemberRepo) UpdateDisplayOrder(_ context.Context, ids []int) ([]int, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var missing []int
	for i, id := range ids {
		if mem, ok := m.members[id]; ok {
			mem.DisplayOrder = i
		} else {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// ── Mock PublicationRepository ──

type mockPublicationRepo struct {
	pubs    map[int]*model.Publication
	nextID  int
	failing bool
}

func newMockPublicationRepo() *mockPublicationRepo {
	return &mockPublicationRepo{pubs: make(map[int]*model.Publication), nextID: 1}
}

func (m *mockPublicationRepo) Create(_ context.Context, pub *model.Publication) error {
	if m.failing {
		return errStorageDown
	}
	if pub.ID == 0 {
		pub.ID = m.nextID
		m.nextID++
	}
	cp := *pub
	m.pubs[pub.ID] = &cp
	return nil
}

func (m *mockPublicationRepo) GetByID(_ context.Context, id int) (*model.Publication, error) {
	if m.failing {
		return nil, errStorageDown
	}
	if p, ok := m.pubs[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPublicationRepo) List(_ context.Context) ([]model.Publication, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var result []model.Publication
	for _, p := range m.pubs {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})
	return result, nil
}

func (m *mockPublicationRepo) ListFeatured(_ context.Context) ([]model.Publication, error) {
	all, err := m.List(nil)
	if err != nil {
		return nil, err
	}
	var result []model.Publication
	for _, p := range all {
		if p.Featured == 1 {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPublicationRepo) Update(_ context.Context, pub *model.Publication) error {
	if m.failing {
		return errStorageDown
	}
	cp := *pub
	m.pubs[pub.ID] = &cp
	return nil
}

func (m *mockPublicationRepo) Delete(_ context.Context, id int) error {
	if m.failing {
		return errStorageDown
	}
	if _, ok := m.pubs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.pubs, id)
	return nil
}

// ── Mock NewsRepository ──

type mockNewsRepo struct {
	items   map[int]*model.News
	nextID  int
	failing bool
}

func newMockNewsRepo() *mockNewsRepo {
	return &mockNewsRepo{items: make(map[int]*model.News), nextID: 1}
}

func (m *mockNewsRepo) Create(_ context.Context, item *model.News) error {
	if m.failing {
		return errStorageDown
	}
	if item.ID == 0 {
		item.ID = m.nextID
		m.nextID++
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockNewsRepo) GetByID(_ context.Context, id int) (*model.News, error) {
	if m.failing {
		return nil, errStorageDown
	}
	if n, ok := m.items[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNewsRepo) List(_ context.Context) ([]model.News, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var result []model.News
	for _, n := range m.items {
		result = append(result, *n)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})
	return result, nil
}

func (m *mockNewsRepo) ListFeatured(_ context.Context, limit int) ([]model.News, error) {
	all, err := m.List(nil)
	if err != nil {
		return nil, err
	}
	var result []model.News
	for _, n := range all {
		if n.Featured == 1 {
			result = append(result, n)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

func (m *mockNewsRepo) Update(_ context.Context, item *model.News) error {
	if m.failing {
		return errStorageDown
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockNewsRepo) Delete(_ context.Context, id int) error {
	if m.failing {
		return errStorageDown
	}
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

// ── Mock ConferenceRepository ──

type mockConferenceRepo struct {
	confs   map[int]*model.Conference
	nextID  int
	failing bool
}

func newMockConferenceRepo() *mockConferenceRepo {
	return &mockConferenceRepo{confs: make(map[int]*model.Conference), nextID: 1}
}

func (m *mockConferenceRepo) Create(_ context.Context, conf *model.Conference) error {
	if m.failing {
		return errStorageDown
	}
	if conf.ID == 0 {
		conf.ID = m.nextID
		m.nextID++
	}
	cp := *conf
	m.confs[conf.ID] = &cp
	return nil
}

func (m *mockConferenceRepo) GetByID(_ context.Context, id int) (*model.Conference, error) {
	if m.failing {
		return nil, errStorageDown
	}
	if c, ok := m.confs[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockConferenceRepo) List(_ context.Context) ([]model.Conference, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var result []model.Conference
	for _, c := range m.confs {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].StartDate.After(result[j].StartDate)
	})
	return result, nil
}

func (m *mockConferenceRepo) Update(_ context.Context, conf *model.Conference) error {
	if m.failing {
		return errStorageDown
	}
	cp := *conf
	m.confs[conf.ID] = &cp
	return nil
}

func (m *mockConferenceRepo) Delete(_ context.Context, id int) error {
	if m.failing {
		return errStorageDown
	}
	if _, ok := m.confs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.confs, id)
	return nil
}

// ── Mock ResearchAreaRepository ──

type mockResearchAreaRepo struct {
	areas   map[int]*model.ResearchArea
	failing bool
}

func newMockResearchAreaRepo() *mockResearchAreaRepo {
	return &mockResearchAreaRepo{areas: make(map[int]*model.ResearchArea)}
}

func (m *mockResearchAreaRepo) GetByID(_ context.Context, id int) (*model.ResearchArea, error) {
	if m.failing {
		return nil, errStorageDown
	}
	if a, ok := m.areas[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResearchAreaRepo) List(_ context.Context) ([]model.ResearchArea, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var result []model.ResearchArea
	for _, a := range m.areas {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockResearchAreaRepo) Update(_ context.Context, area *model.ResearchArea) error {
	if m.failing {
		return errStorageDown
	}
	cp := *area
	m.areas[area.ID] = &cp
	return nil
}

func (m *mockResearchAreaRepo) UpdateDisplayOrder(_ context.Context, ids []int) ([]int, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var missing []int
	for i, id := range ids {
		if a, ok := m.areas[id]; ok {
			a.DisplayOrder = i
		} else {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// ── Mock PageRepository ──

type mockPageRepo struct {
	pages   map[string]*model.Page
	failing bool
}

func newMockPageRepo() *mockPageRepo {
	return &mockPageRepo{pages: make(map[string]*model.Page)}
}

func (m *mockPageRepo) GetBySlug(_ context.Context, slug string) (*model.Page, error) {
	if m.failing {
		return nil, errStorageDown
	}
	if p, ok := m.pages[slug]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPageRepo) List(_ context.Context) ([]model.Page, error) {
	if m.failing {
		return nil, errStorageDown
	}
	var result []model.Page
	for _, p := range m.pages {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Slug < result[j].Slug
	})
	return result, nil
}

func (m *mockPageRepo) Upsert(_ context.Context, page *model.Page) error {
	if m.failing {
		return errStorageDown
	}
	cp := *page
	m.pages[page.Slug] = &cp
	return nil
}

// ── 测试夹具 ──

type mockRepos struct {
	member       *mockMemberRepo
	publication  *mockPublicationRepo
	news         *mockNewsRepo
	conference   *mockConferenceRepo
	researchArea *mockResearchAreaRepo
	page         *mockPageRepo
}

// newTestRepository 构造全 mock 的 Repository 聚合
func newTestRepository() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		member:       newMockMemberRepo(),
		publication:  newMockPublicationRepo(),
		news:         newMockNewsRepo(),
		conference:   newMockConferenceRepo(),
		researchArea: newMockResearchAreaRepo(),
		page:         newMockPageRepo(),
	}
	repo := &repository.Repository{
		Member:       mocks.member,
		Publication:  mocks.publication,
		News:         mocks.news,
		Conference:   mocks.conference,
		ResearchArea: mocks.researchArea,
		Page:         mocks.page,
	}
	return repo, mocks
}

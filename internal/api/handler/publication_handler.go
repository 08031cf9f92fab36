package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/service"
	"github.com/szxing21/fiowin-lab-website/pkg/response"
)

// PublicationHandler 论文模块 HTTP 处理器
type PublicationHandler struct {
	pubSvc service.PublicationService
}

// NewPublicationHandler 创建 PublicationHandler
func NewPublicationHandler(pubSvc service.PublicationService) *PublicationHandler {
	return &PublicationHandler{pubSvc: pubSvc}
}

// ListPublications 获取论文列表（年份倒序）
// GET /api/v1/publications?featured=1
func (h *PublicationHandler) ListPublications(c *gin.Context) {
	if c.Query("featured") == "1" {
		response.OK(c, gin.H{"list": h.pubSvc.ListFeatured(c.Request.Context())})
		return
	}
	response.OK(c, gin.H{"list": h.pubSvc.List(c.Request.Context())})
}

// GetPublication 获取论文详情
// GET /api/v1/publications/:id
func (h *PublicationHandler) GetPublication(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	pub, err := h.pubSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePublicationError(c, err)
		return
	}
	response.OK(c, pub)
}

// CreatePublication 创建论文
// POST /api/v1/admin/publications
func (h *PublicationHandler) CreatePublication(c *gin.Context) {
	var req dto.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	pub, err := h.pubSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePublicationError(c, err)
		return
	}
	response.Created(c, pub)
}

// UpdatePublication 部分更新论文
// PUT /api/v1/admin/publications/:id
func (h *PublicationHandler) UpdatePublication(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	pub, err := h.pubSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePublicationError(c, err)
		return
	}
	response.OK(c, pub)
}

// DeletePublication 删除论文
// DELETE /api/v1/admin/publications/:id
func (h *PublicationHandler) DeletePublication(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.pubSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePublicationError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *PublicationHandler) handlePublicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPublicationNotFound):
		response.NotFound(c, 13001, "论文不存在")
	case errors.Is(err, service.ErrInvalidPubType):
		response.BadRequest(c, 13002, "无效的论文类型")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/publication_handler.go

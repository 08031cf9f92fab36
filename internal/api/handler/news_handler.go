package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/service"
	"github.com/szxing21/fiowin-lab-website/pkg/response"
)

// NewsHandler 新闻模块 HTTP 处理器
type NewsHandler struct {
	newsSvc service.NewsService
}

// NewNewsHandler 创建 NewsHandler
func NewNewsHandler(newsSvc service.NewsService) *NewsHandler {
	return &NewsHandler{newsSvc: newsSvc}
}

// ListNews 获取新闻列表（发布时间倒序）
// GET /api/v1/news?featured=1
func (h *NewsHandler) ListNews(c *gin.Context) {
	if c.Query("featured") == "1" {
		response.OK(c, gin.H{"list": h.newsSvc.ListFeatured(c.Request.Context())})
		return
	}
	response.OK(c, gin.H{"list": h.newsSvc.List(c.Request.Context())})
}

// GetNews 获取新闻详情
// GET /api/v1/news/:id
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.newsSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleNewsError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateNews 创建新闻
// POST /api/v1/admin/news
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req dto.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	item, err := h.newsSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleNewsError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateNews 部分更新新闻
// PUT /api/v1/admin/news/:id
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	item, err := h.newsSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleNewsError(c, err)
		return
	}
	response.OK(c, item)
}

// DeleteNews 删除新闻
// DELETE /api/v1/admin/news/:id
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.newsSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleNewsError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *NewsHandler) handleNewsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNewsNotFound):
		response.NotFound(c, 14001, "新闻不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/news_handler.go

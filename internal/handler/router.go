package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mypage/profilehub/internal/config"
	"mypage/profilehub/internal/handler/middleware"
	"mypage/profilehub/internal/model"
)

// Handlers groups every slice handler the router mounts.
type Handlers struct {
	Profile     *ProfileHandler
	Posts       *PostHandler
	Photos      *ListHandler[model.Photo]
	Friends     *ListHandler[model.Friend]
	Music       *ListHandler[model.Track]
	Videos      *ListHandler[model.Video]
	Communities *ListHandler[model.Community]
	Messages    *MessageHandler
	News        *NewsHandler
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/profile", h.Profile.Get)
		api.PUT("/profile", h.Profile.Update)

		api.GET("/posts", h.Posts.List)
		api.POST("/posts", h.Posts.Create)
		api.DELETE("/posts/:id", h.Posts.Delete)
		api.POST("/posts/:id/like", h.Posts.ToggleLike)
		api.POST("/posts/:id/comments", h.Posts.AddComment)
		api.POST("/posts/:id/comments/toggle", h.Posts.ToggleComments)

		h.Photos.mount(api.Group("/photos"))
		h.Friends.mount(api.Group("/friends"))
		h.Music.mount(api.Group("/music"))
		h.Videos.mount(api.Group("/videos"))
		h.Communities.mount(api.Group("/communities"))

		api.GET("/messages", h.Messages.List)
		api.POST("/messages", h.Messages.Send)
		api.POST("/messages/:id/read", h.Messages.MarkRead)
		api.DELETE("/messages/:id", h.Messages.Delete)

		api.GET("/news", h.News.List)
		api.POST("/news", h.News.Create)
		api.DELETE("/news/:id", h.News.Delete)
	}

	return r
}

package handler

import (
	"github.com/gin-gonic/gin"

	"mypage/profilehub/internal/model"
	"mypage/profilehub/internal/service"
	"mypage/profilehub/pkg/response"
)

type NewsHandler struct {
	newsService service.NewsService
}

func NewNewsHandler(newsService service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.newsService.List(c.Request.Context())
	if err != nil {
		fail(c, err, "list news")
		return
	}
	response.Cached(c, items)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req model.NewsItem
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := h.newsService.Add(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "add news")
		return
	}
	response.Created(c, item)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.newsService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "delete news")
		return
	}
	response.Success(c, nil)
}

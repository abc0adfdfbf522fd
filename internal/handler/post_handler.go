package handler

import (
	"github.com/gin-gonic/gin"

	"mypage/profilehub/internal/service"
	"mypage/profilehub/pkg/response"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type CreatePostRequest struct {
	Text  string `json:"text" binding:"required"`
	Image string `json:"image"`
}

type CreateCommentRequest struct {
	Author string `json:"author" binding:"required"`
	Avatar string `json:"avatar"`
	Text   string `json:"text" binding:"required"`
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		fail(c, err, "list posts")
		return
	}
	response.Cached(c, posts)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	post, err := h.postService.Add(c.Request.Context(), req.Text, req.Image)
	if err != nil {
		fail(c, err, "create post")
		return
	}
	response.Created(c, post)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	post, err := h.postService.ToggleLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "toggle like")
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	post, err := h.postService.AddComment(c.Request.Context(), c.Param("id"), req.Author, req.Avatar, req.Text)
	if err != nil {
		fail(c, err, "add comment")
		return
	}
	response.Created(c, post)
}

func (h *PostHandler) ToggleComments(c *gin.Context) {
	post, err := h.postService.ToggleComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "toggle comments")
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "delete post")
		return
	}
	response.Success(c, nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"mypage/profilehub/internal/service"
	"mypage/profilehub/pkg/response"
)

// ListHandler serves list/create/delete for one ListService-backed slice.
type ListHandler[T any] struct {
	name    string
	service service.ListService[T]
}

func NewListHandler[T any](name string, svc service.ListService[T]) *ListHandler[T] {
	return &ListHandler[T]{name: name, service: svc}
}

func (h *ListHandler[T]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err, "list "+h.name)
		return
	}
	response.Cached(c, items)
}

func (h *ListHandler[T]) Create(c *gin.Context) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "add to "+h.name)
		return
	}
	response.Created(c, item)
}

func (h *ListHandler[T]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "delete from "+h.name)
		return
	}
	response.Success(c, nil)
}

// mount registers the three routes under group.
func (h *ListHandler[T]) mount(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.DELETE("/:id", h.Delete)
}

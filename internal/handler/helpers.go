package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mypage/profilehub/internal/service"
	"mypage/profilehub/pkg/response"
)

// fail maps service errors onto the response envelope.
func fail(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmptyText), errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c, what+" failed")
	}
}

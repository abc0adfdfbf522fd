package handler

import (
	"github.com/gin-gonic/gin"

	"mypage/profilehub/internal/model"
	"mypage/profilehub/internal/service"
	"mypage/profilehub/pkg/response"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		fail(c, err, "load profile")
		return
	}
	response.Cached(c, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req model.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "save profile")
		return
	}
	response.Success(c, profile)
}

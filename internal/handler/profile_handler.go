package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"counsellor/internal/service/profile"
)

type ProfileHandler struct {
	profileService *profile.Service
}

func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetInt("user_id")

	view, err := h.profileService.Get(c.Request.Context(), userID)
	if errors.Is(err, profile.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetInt("user_id")

	var update profile.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.profileService.Apply(c.Request.Context(), userID, update)
	if errors.Is(err, profile.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

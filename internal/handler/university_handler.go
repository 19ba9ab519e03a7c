package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"counsellor/internal/service/university"
)

type UniversityHandler struct {
	universityService *university.Service
}

func NewUniversityHandler(universityService *university.Service) *UniversityHandler {
	return &UniversityHandler{universityService: universityService}
}

func (h *UniversityHandler) Search(c *gin.Context) {
	query := c.Query("query")
	results := h.universityService.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type shortlistRequest struct {
	UniversityName string `json:"university_name" binding:"required"`
	Country        string `json:"country"`
	Category       string `json:"category"`
}

func (h *UniversityHandler) AddToShortlist(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req shortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "university_name required"})
		return
	}

	item, err := h.universityService.AddToShortlist(c.Request.Context(), userID, req.UniversityName, req.Country, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to shortlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shortlisted", "shortlist_id": item.ID})
}

func (h *UniversityHandler) ListShortlist(c *gin.Context) {
	userID := c.GetInt("user_id")

	entries, err := h.universityService.ListShortlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shortlist"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *UniversityHandler) Lock(c *gin.Context) {
	h.setLock(c, true)
}

func (h *UniversityHandler) Unlock(c *gin.Context) {
	h.setLock(c, false)
}

func (h *UniversityHandler) setLock(c *gin.Context, lock bool) {
	userID := c.GetInt("user_id")

	shortlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shortlist id"})
		return
	}

	if lock {
		err = h.universityService.Lock(c.Request.Context(), userID, shortlistID)
	} else {
		err = h.universityService.Unlock(c.Request.Context(), userID, shortlistID)
	}
	if errors.Is(err, university.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shortlist item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lock"})
		return
	}

	message := "Locked"
	if !lock {
		message = "Unlocked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

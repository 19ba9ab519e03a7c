package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counsellor/internal/service/tasks"
	"counsellor/pkg/logger"
)

type TaskHandler struct {
	taskService *tasks.Service
	logger      *zap.Logger
}

func NewTaskHandler(taskService *tasks.Service, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

func (h *TaskHandler) List(c *gin.Context) {
	userID := c.GetInt("user_id")

	list, err := h.taskService.List(c.Request.Context(), userID)
	if err != nil {
		logger.WithTrace(c.Request.Context(), h.logger).Error("List tasks failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": list})
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	t, err := h.taskService.Create(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusOK, t)
}

type reorderRequest struct {
	TaskIDs []int `json:"task_ids" binding:"required"`
}

func (h *TaskHandler) Reorder(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_ids required"})
		return
	}

	if err := h.taskService.Reorder(c.Request.Context(), userID, req.TaskIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reordering successful"})
}

func (h *TaskHandler) Toggle(c *gin.Context) {
	userID := c.GetInt("user_id")

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	t, err := h.taskService.Toggle(c.Request.Context(), userID, taskID)
	if errors.Is(err, tasks.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task status updated", "new_status": t.Status})
}

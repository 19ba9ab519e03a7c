package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counsellor/internal/service/counsellor"
	"counsellor/pkg/logger"
)

type ChatHandler struct {
	chatService *counsellor.Service
	logger      *zap.Logger
}

func NewChatHandler(chatService *counsellor.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

func (h *ChatHandler) History(c *gin.Context) {
	userID := c.GetInt("user_id")

	messages, err := h.chatService.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	result, err := h.chatService.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		logger.WithTrace(c.Request.Context(), h.logger).Error("Chat failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chat failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

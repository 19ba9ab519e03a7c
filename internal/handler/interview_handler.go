package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"counsellor/internal/service/counsellor"
	"counsellor/internal/service/interview"
)

type InterviewHandler struct {
	interviewService *interview.Service
}

func NewInterviewHandler(interviewService *interview.Service) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

func (h *InterviewHandler) Status(c *gin.Context) {
	userID := c.GetInt("user_id")

	status, err := h.interviewService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

type interviewChatRequest struct {
	Message string `json:"message" binding:"required"`
	Mode    string `json:"mode" binding:"required"`
	History []struct {
		Role string `json:"role"`
		Text string `json:"text"`
	} `json:"history"`
}

func (h *InterviewHandler) Chat(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req interviewChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message and mode required"})
		return
	}

	history := make([]counsellor.ChatTurn, 0, len(req.History))
	for _, msg := range req.History {
		role := msg.Role
		// Frontends report the interviewer's lines as "model".
		if role == "model" || role == "bot" {
			role = "assistant"
		}
		history = append(history, counsellor.ChatTurn{Role: role, Content: msg.Text})
	}

	reply, err := h.interviewService.Chat(c.Request.Context(), userID, req.Mode, req.Message, history)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "interview chat failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

type saveInterviewRequest struct {
	Transcript string `json:"transcript"`
	Mode       string `json:"mode"`
}

func (h *InterviewHandler) Save(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req saveInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, err := h.interviewService.Save(c.Request.Context(), userID, req.Mode, req.Transcript); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save interview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saved"})
}

func (h *InterviewHandler) History(c *gin.Context) {
	userID := c.GetInt("user_id")
	mode := c.Query("mode")

	entries, err := h.interviewService.History(c.Request.Context(), userID, mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"study-assistant/internal/middleware"
	"study-assistant/internal/service"
	"study-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// StudyHandler 处理问答和对话历史相关的 API 请求。
type StudyHandler struct {
	studyService service.StudyService
}

// NewStudyHandler 创建一个新的 StudyHandler。
func NewStudyHandler(studyService service.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

// AskRequest 是 /api/ask 的请求体，subject 可选。
type AskRequest struct {
	Question string `json:"question"`
	Subject  string `json:"subject"`
}

// Ask 处理提问请求。
func (h *StudyHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sessionID := middleware.SessionID(c)
	result, err := h.studyService.Ask(c.Request.Context(), sessionID, req.Question, req.Subject)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
			return
		}
		log.Errorw("处理提问失败", "sessionID", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process question"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// History 返回当前会话最近的对话消息，limit 默认 20。
func (h *StudyHandler) History(c *gin.Context) {
	limit := service.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	sessionID := middleware.SessionID(c)
	messages, err := h.studyService.History(c.Request.Context(), sessionID, limit)
	if err != nil {
		log.Errorw("获取对话历史失败", "sessionID", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"messages":   messages,
	})
}

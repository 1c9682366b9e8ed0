package handler

import (
	"net/http"

	"study-assistant/internal/web"

	"github.com/gin-gonic/gin"
)

// Index 返回内嵌的前端页面。
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

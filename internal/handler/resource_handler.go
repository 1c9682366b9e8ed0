package handler

import (
	"net/http"

	"study-assistant/internal/service"
	"study-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// ResourceHandler 处理学习资源目录的请求。
type ResourceHandler struct {
	resourceService service.ResourceService
}

// NewResourceHandler 创建一个新的 ResourceHandler。
func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// List 返回全部学习资源。
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.resourceService.List(c.Request.Context())
	if err != nil {
		log.Error("获取学习资源失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resources"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

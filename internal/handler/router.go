package handler

import (
	"study-assistant/internal/middleware"
	"study-assistant/internal/service"
	"study-assistant/pkg/token"

	"github.com/gin-gonic/gin"
)

// Dependencies 汇总了注册路由所需的服务。
type Dependencies struct {
	StudyService    service.StudyService
	ResourceService service.ResourceService
	SessionService  service.SessionService
	SessionManager  *token.SessionManager
	CookieName      string
	Version         string
}

// NewRouter 创建 gin 引擎并注册全部路由。
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS())

	sessions := middleware.Session(deps.SessionManager, deps.SessionService, deps.CookieName)
	studyHandler := NewStudyHandler(deps.StudyService)

	r.GET("/", sessions, Index)

	api := r.Group("/api")
	{
		api.GET("/health", NewHealthHandler(deps.Version).Check)
		api.GET("/resources", NewResourceHandler(deps.ResourceService).List)

		withSession := api.Group("")
		withSession.Use(sessions)
		{
			withSession.POST("/ask", studyHandler.Ask)
			withSession.GET("/history", studyHandler.History)
		}
	}
	return r
}

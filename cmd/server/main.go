// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-assistant/internal/config"
	"study-assistant/internal/handler"
	"study-assistant/internal/repository"
	"study-assistant/internal/service"
	"study-assistant/pkg/database"
	"study-assistant/pkg/kafka"
	"study-assistant/pkg/llm"
	"study-assistant/pkg/log"
	"study-assistant/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	cfg, err := config.Load("./configs/config.yaml")
	if err != nil {
		stdlog.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	if cfg.LLM.APIKey == "" {
		log.Warnf("未配置 AI_API_KEY，所有回答将使用兜底文本")
	}

	// 3. 初始化数据库、Redis 和 Kafka
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("数据库初始化失败", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("数据库迁移失败", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	var historyRepo repository.HistoryRepository
	rdb, err := database.NewRedis(startupCtx, cfg.Database.Redis)
	if err != nil {
		// Redis 只是历史缓存，连接失败时退回数据库
		log.Error("Redis 连接失败，对话历史将直接读取数据库", err)
	} else if rdb != nil {
		historyRepo = repository.NewHistoryRepository(rdb)
		defer rdb.Close()
	}

	var publisher service.EventPublisher
	if producer := kafka.NewProducer(cfg.Kafka); producer != nil {
		publisher = producer
		defer producer.Close()
	}

	// 4. 初始化 Repository
	conversationRepo := repository.NewConversationRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// 5. 初始化 Service (依赖注入)
	llmClient := llm.NewClient(cfg.LLM)
	answerService := service.NewAnswerService(llmClient)
	studyService := service.NewStudyService(answerService, conversationRepo, historyRepo, publisher)
	resourceService := service.NewResourceService(resourceRepo)
	sessionService := service.NewSessionService(sessionRepo)

	// 6. 写入默认学习资源（已存在则跳过）
	if err := resourceService.EnsureSeeded(startupCtx); err != nil {
		log.Fatal("初始化学习资源失败", err)
	}

	// 7. 设置 Gin 模式并注册路由
	gin.SetMode(cfg.Server.Mode())
	r := handler.NewRouter(handler.Dependencies{
		StudyService:    studyService,
		ResourceService: resourceService,
		SessionService:  sessionService,
		SessionManager:  token.NewSessionManager(cfg.Session.Secret, cfg.Session.TTLHours),
		CookieName:      cfg.Session.CookieName,
		Version:         cfg.App.Version,
	})

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("HTTP 服务器关闭失败: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("服务已优雅关闭")
}

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/AndrewAitken/simp/internal/adapter/db"
	httpadapter "github.com/AndrewAitken/simp/internal/adapter/http"
	"github.com/AndrewAitken/simp/internal/adapter/http/handlers"
	httpmiddleware "github.com/AndrewAitken/simp/internal/adapter/http/middleware"
	"github.com/AndrewAitken/simp/internal/adapter/notify"
	"github.com/AndrewAitken/simp/internal/app/scheduler"
	"github.com/AndrewAitken/simp/internal/app/service"
	"github.com/AndrewAitken/simp/internal/config"
	"github.com/AndrewAitken/simp/internal/core/ports"
	"github.com/AndrewAitken/simp/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to open sqlite database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close sqlite database", zap.Error(err))
		}
	}()

	stateRepo, err := dbadapter.NewStateRepository(db)
	if err != nil {
		logger.Fatal("failed to prepare state storage", zap.Error(err))
	}

	taskService, err := service.NewTaskService(
		context.Background(),
		stateRepo,
		service.WithGenerationDelay(cfg.GenerationDelay),
	)
	if err != nil {
		logger.Fatal("failed to initialize task store", zap.Error(err))
	}

	toastFeed := notify.NewToastFeed(cfg.ToastFeedCapacity)
	reminderScheduler := scheduler.New(
		scheduler.Config{
			TickPeriod:  cfg.ReminderTickPeriod,
			MatchWindow: cfg.ReminderMatchWindow,
		},
		taskService,
		[]ports.Notifier{notify.NewLogNotifier(logger), toastFeed},
	)
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("failed to set trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(toastFeed)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, notificationHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

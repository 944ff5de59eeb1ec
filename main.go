// File: decorquote/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decorquote/config"
	"decorquote/cron"
	sessionRepo "decorquote/database/repository/session"
	"decorquote/handlers"
	"decorquote/middleware"
	"decorquote/routes"
	"decorquote/services/booking"
	"decorquote/services/inquiry"
	"decorquote/services/notification"
	"decorquote/services/tasks"
	"decorquote/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// repositories.
	var repo sessionRepo.SessionRepository
	if cfg.SessionStore == "memory" {
		mem := sessionRepo.NewInMemorySessionRepo(cfg.SessionTTL)
		cron.StartSessionSweeper(bgCtx, mem, time.Minute, logger)
		repo = mem
		logger.Warn("main: using in-memory booking sessions; state is lost on restart")
	} else {
		client := utils.GetSessionCacheClient()
		utils.StartHealthMonitor(bgCtx, client, 60*time.Second)
		repo = sessionRepo.NewRedisSessionRepo(client, cfg.SessionTTL)
	}

	// services.
	sessionNotices, err := notification.NewSessionNoticeService(repo, cfg.NoticeTTL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	notifier := notification.Multi{sessionNotices, notification.LogNotifier{Logger: logger}}
	sender := inquiry.NewClient(cfg.InquiryAPIURL, cfg.InquiryAPIKey, cfg.InquiryTimeout)

	bookingService := booking.NewDefaultBookingSessionService(repo, sender, notifier, logger)
	bookingService.DefaultAddons = config.DefaultAddons()
	bookingService.SubmitLockTTL = cfg.SubmitLockTTL
	bookingService.SubmitStaleAfter = cfg.SubmitStaleAfter

	var worker *asynq.Server
	if config.UsesQueuedDispatch() {
		queueClient := asynq.NewClient(cron.RedisOpt())
		defer queueClient.Close()
		bookingService.Queue = &tasks.AsynqInquiryQueue{Client: queueClient}
		worker = cron.InitInquiryWorker(bookingService, logger)
		logger.Info("main: inquiries are dispatched through the queue")
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	routes.RegisterRoutes(router, handlers.NewBookingBundle(bookingHandler))

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}

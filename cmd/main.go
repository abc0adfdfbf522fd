package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"mypage/profilehub/internal/config"
	"mypage/profilehub/internal/handler"
	"mypage/profilehub/internal/keyedstore"
	"mypage/profilehub/internal/relclock"
	"mypage/profilehub/internal/repository"
	"mypage/profilehub/internal/service"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// 3. Open the key/value backend
	kv, closeKV, err := repository.Open(context.Background(), cfg.Storage)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	defer closeKV()
	logger.Info("storage ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.Int64("quota_bytes", cfg.Storage.QuotaBytes),
	)
	store := keyedstore.New(kv, logger.Named("keyedstore"))

	// 4. Relative time rendering
	locale, err := relclock.LocaleByName(cfg.Locale.Name)
	if err != nil {
		logger.Fatal("invalid locale", zap.Error(err))
	}
	loc, err := time.LoadLocation(cfg.Locale.Timezone)
	if err != nil {
		logger.Fatal("invalid timezone", zap.String("timezone", cfg.Locale.Timezone), zap.Error(err))
	}
	clock := relclock.NewFormatter(locale, loc, relclock.SystemClock{})

	// 5. Initialize services
	svcLogger := logger.Named("service")
	profileService := service.NewProfileService(store, svcLogger)
	postService := service.NewPostService(store, clock, svcLogger)
	photoService := service.NewPhotoService(store, clock, svcLogger)
	friendService := service.NewFriendService(store, clock, svcLogger)
	musicService := service.NewMusicService(store, clock, svcLogger)
	videoService := service.NewVideoService(store, clock, svcLogger)
	communityService := service.NewCommunityService(store, clock, svcLogger)
	messageService := service.NewMessageService(store, clock, svcLogger)
	newsService := service.NewNewsService(store, clock, svcLogger)

	// 6. Initialize handlers and router
	router := handler.SetupRouter(cfg, logger.Named("http"), handler.Handlers{
		Profile:     handler.NewProfileHandler(profileService),
		Posts:       handler.NewPostHandler(postService),
		Photos:      handler.NewListHandler("photos", photoService),
		Friends:     handler.NewListHandler("friends", friendService),
		Music:       handler.NewListHandler("music", musicService),
		Videos:      handler.NewListHandler("videos", videoService),
		Communities: handler.NewListHandler("communities", communityService),
		Messages:    handler.NewMessageHandler(messageService),
		News:        handler.NewNewsHandler(newsService),
	})

	// 7. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 8. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("locale", cfg.Locale.Name))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}

package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/navneetmaurya-hub/WonderLust/internal/config"
	"github.com/navneetmaurya-hub/WonderLust/internal/handler"
	"github.com/navneetmaurya-hub/WonderLust/internal/middleware"
	mongoclient "github.com/navneetmaurya-hub/WonderLust/internal/mongo"
	"github.com/navneetmaurya-hub/WonderLust/internal/repository"
	"github.com/navneetmaurya-hub/WonderLust/internal/service"
	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()
	client, err := mongoclient.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.DatabaseName)

	listingRepo := repository.NewListingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("index creation failed", zap.Error(err))
	}

	listingSvc := service.NewListingService(listingRepo, reviewRepo, userRepo)
	reviewSvc := service.NewReviewService(reviewRepo, listingRepo)
	userSvc := service.NewUserService(userRepo)

	sess := session.NewManager(cfg.SessionSecret, logger)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorHandler(logger, sess))
	r.Use(middleware.CurrentUser(sess, userSvc))
	r.LoadHTMLGlob("templates/**/*.html")

	requireLogin := middleware.RequireLogin(sess)
	handler.NewListingHandler(listingSvc, sess).RegisterRoutes(r, requireLogin)
	handler.NewReviewHandler(reviewSvc, sess).RegisterRoutes(r, requireLogin)
	handler.NewUserHandler(userSvc, sess).RegisterRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/listings")
	})
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/listings")
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	srv := middleware.MethodOverride(r)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

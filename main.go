package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-food-ordering/config"
	controller "go-food-ordering/controllers"
	"go-food-ordering/database"
	"go-food-ordering/helpers"
	"go-food-ordering/logger"
	"go-food-ordering/media"
	"go-food-ordering/middleware"
	"go-food-ordering/realtime"
	"go-food-ordering/repository"
	"go-food-ordering/routes"
	"go-food-ordering/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	boot, _ := zap.NewDevelopment()
	config.LoadDotEnv(boot)
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		boot.Fatal("failed to build logger", zap.Error(err))
	}
	defer log.Sync()

	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.DBinstance(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatal("mongodb unavailable", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Warn("could not ensure indexes", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal("redis unavailable", zap.Error(err))
	}
	defer redisClient.Close()

	feed := realtime.NewFeed()
	if cfg.WatchChangeStreams {
		realtime.WatchCollections(ctx, db, feed, log,
			database.FoodCollection, database.CategoryCollection, database.OrderCollection)
	}

	uploader, err := newUploader(ctx, cfg.Media, log)
	if err != nil {
		log.Fatal("media uploader", zap.Error(err))
	}

	foods := repository.NewFoodRepository(db, feed)
	categories := repository.NewCategoryRepository(db, feed)
	orders := repository.NewOrderRepository(db, feed)
	users := repository.NewUserRepository(db, feed)
	credentials := repository.NewCredentialRepository(db)
	sessions := repository.NewSessionRepository(redisClient)
	carts := repository.NewCartRepository(redisClient, cfg.CartTTL)

	authService := services.NewAuthService(credentials, users, sessions, helpers.NewTokenMaker(cfg.SecretKey, cfg.TokenTTL), log)
	catalog := services.NewCatalogService(foods, categories, uploader, feed, log)
	adminOrders := services.NewAdminOrderService(orders, foods, feed, log)
	menu := services.NewMenuService(foods, categories, feed)
	cart := services.NewCartService(carts, cfg.DeliveryFee)
	customerOrders := services.NewCustomerOrderService(orders, cart, feed, log)
	profiles := services.NewProfileService(users)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	routes.Register(router, routes.Handlers{
		Users:      controller.NewUserController(authService, log),
		Foods:      controller.NewFoodController(catalog, log),
		Categories: controller.NewCategoryController(catalog, log),
		Orders:     controller.NewOrderController(adminOrders, customerOrders, log),
		Dashboard:  controller.NewDashboardController(adminOrders, log),
		Menu:       controller.NewMenuController(menu, log),
		Cart:       controller.NewCartController(cart, log),
		Profile:    controller.NewProfileController(profiles, log),
		Sockets:    controller.NewSocketController(catalog, adminOrders, menu, customerOrders, log),
	}, middleware.Authentication(authService), middleware.CartSession(cfg.CartTTL))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		log.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server shutdown complete")
}

func newUploader(ctx context.Context, cfg config.MediaConfig, log *zap.Logger) (media.Uploader, error) {
	if cfg.Provider == "s3" {
		up, err := media.NewS3Uploader(ctx, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			return nil, err
		}
		return up, nil
	}
	up, err := media.NewCloudinaryUploader(media.CloudinaryOptions{
		URL:          cfg.CloudURL,
		CloudName:    cfg.CloudName,
		APIKey:       cfg.CloudAPIKey,
		APISecret:    cfg.CloudSecret,
		UploadPreset: cfg.UploadPreset,
		UploadPrefix: cfg.CloudBaseURL,
	}, log)
	if err != nil {
		return nil, err
	}
	return up, nil
}

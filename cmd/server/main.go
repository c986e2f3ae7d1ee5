package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/config"
	"github.com/inerttila/inventory-hub/internal/database"
	"github.com/inerttila/inventory-hub/internal/inventory/handler"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
	"github.com/inerttila/inventory-hub/internal/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting inventory-hub service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := database.Open(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 建表 + 增量迁移
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	// 初始化依赖
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db)
	handlers := handler.NewHandlers(services, cfg)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

// tenantResolver 按配置选择租户解析方式
func tenantResolver(cfg *config.Config) middleware.TenantResolver {
	if cfg.Auth.Mode == "jwt" {
		return middleware.JWTResolver{Secret: cfg.Auth.JWTSecret}
	}
	return middleware.HeaderResolver{}
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// 静态文件服务 - 上传文件
	r.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir)

	// 业务API，全部经过租户认证
	api := r.Group("/api")
	api.Use(middleware.TenantAuth(tenantResolver(cfg)))
	{
		categories := api.Group("/categories")
		{
			categories.POST("", h.Category.Create)
			categories.GET("", h.Category.List)
			categories.GET("/:id", h.Category.Get)
			categories.PUT("/:id", h.Category.Update)
			categories.DELETE("/:id", h.Category.Delete)
		}

		brands := api.Group("/brands")
		{
			brands.POST("", h.Brand.Create)
			brands.GET("", h.Brand.List)
			brands.GET("/:id", h.Brand.Get)
			brands.PUT("/:id", h.Brand.Update)
			brands.DELETE("/:id", h.Brand.Delete)
		}

		currencies := api.Group("/currencies")
		{
			currencies.POST("", h.Currency.Create)
			currencies.GET("", h.Currency.List)
			currencies.GET("/:id", h.Currency.Get)
			currencies.PUT("/:id", h.Currency.Update)
			currencies.DELETE("/:id", h.Currency.Delete)
		}

		clients := api.Group("/clients")
		{
			clients.POST("", h.Client.Create)
			clients.GET("", h.Client.List)
			clients.GET("/:id", h.Client.Get)
			clients.PUT("/:id", h.Client.Update)
			clients.DELETE("/:id", h.Client.Delete)
		}

		products := api.Group("/products")
		{
			products.POST("", h.Product.Create)
			products.GET("", h.Product.List)
			products.GET("/:id", h.Product.Get)
			products.PUT("/:id", h.Product.Update)
			products.DELETE("/:id", h.Product.Delete)
		}

		finalProducts := api.Group("/final-products")
		{
			finalProducts.POST("", h.FinalProduct.Create)
			finalProducts.GET("", h.FinalProduct.List)
			finalProducts.GET("/:id", h.FinalProduct.Get)
			finalProducts.PUT("/:id", h.FinalProduct.Update)
			finalProducts.PUT("/:id/done", h.FinalProduct.Done)
			finalProducts.PUT("/:id/reset", h.FinalProduct.Reset)
			finalProducts.DELETE("/:id", h.FinalProduct.Delete)
		}

		api.POST("/upload/component-image", h.Upload.Upload)

		reports := api.Group("/reports")
		{
			reports.GET("/general", h.Report.General)
			reports.GET("/products", h.Report.Inventory)
		}
	}
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

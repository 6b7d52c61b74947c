package api

import (
	"context"
	"net/http"
	"time"

	dietHandler "recipe-extractor/internal/api/handlers/diet"
	extractHandler "recipe-extractor/internal/api/handlers/extract"
	"recipe-extractor/internal/api/handlers/health"
	inventoryHandler "recipe-extractor/internal/api/handlers/inventory"
	quantityHandler "recipe-extractor/internal/api/handlers/quantity"
	"recipe-extractor/internal/api/middleware"
	"recipe-extractor/internal/core/vision"
	"recipe-extractor/internal/infrastructure/cache"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (10MB)
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.CacheManager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("vision_enabled", cfg.OpenRouter.Enabled),
		zap.Int("queue_workers", cfg.Queue.Workers),
		zap.String("model", cfg.OpenRouter.Model),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化視覺服務；文字抽取端點不依賴它，
	// 未啟用時只有照片與收據影像端點會回 503
	var visionSvc *vision.Service
	if cfg.OpenRouter.Enabled {
		visionSvc = vision.NewService(cfg, cacheManager)
	}

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		// 創建新的請求上下文
		c.Request = c.Request.WithContext(ctx)

		// 設置配置與服務
		c.Set("config", cfg)
		if visionSvc != nil {
			c.Set("vision_service", visionSvc)
		}

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	api.Use(middleware.Deduplication(cfg))
	{
		// 文字抽取
		extractGroup := api.Group("/extract")
		{
			extractGroup.POST("/recipe", extractHandler.HandleRecipe)
			extractGroup.POST("/ingredients", extractHandler.HandleIngredients)
			extractGroup.POST("/steps", extractHandler.HandleSteps)
			extractGroup.POST("/photo", extractHandler.HandlePhoto)
		}

		// 數量轉換與縮放
		quantityGroup := api.Group("/quantity")
		{
			quantityGroup.POST("/convert", quantityHandler.HandleConvert)
			quantityGroup.POST("/scale", quantityHandler.HandleScale)
		}

		// 飲食限制
		dietGroup := api.Group("/diet")
		{
			dietGroup.POST("/jain", dietHandler.HandleJain)
		}

		// 庫存
		inventoryGroup := api.Group("/inventory")
		{
			inventoryGroup.POST("/receipt", inventoryHandler.HandleReceipt)
			inventoryGroup.POST("/receipt/missing", inventoryHandler.HandleReceiptMissing)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("vision_service_initialized", visionSvc != nil),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

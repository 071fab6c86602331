package router

import (
	"net/http"

	"resource-share/internal/config"
	"resource-share/internal/handler"
	"resource-share/internal/middleware"
	"resource-share/internal/repository"
	"resource-share/internal/service"
	"resource-share/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	resourceRepo *repository.ResourceRepository,
	sessionService *service.SessionService,
	jwtManager *utils.JWTManager,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "资源分享站 API",
			"version": "1.0.0",
		})
	})

	// 初始化Service
	authService := service.NewAuthService(sessionService, jwtManager)
	catalogService := service.NewCatalogService(resourceRepo, cfg.Catalog)
	adminService := service.NewAdminService(resourceRepo, logger)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	adminHandler := handler.NewAdminHandler(adminService)

	// API路由组
	api := r.Group("/api")
	{
		// 认证
		api.POST("/login", authHandler.Login)
		api.GET("/session", authHandler.Session)

		// 公开目录
		api.GET("/resources", catalogHandler.ListResources)
		api.GET("/resources/:id", catalogHandler.GetResource)
		api.POST("/resources/:id/save", catalogHandler.SaveToCloud)
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/platforms", catalogHandler.ListPlatforms)

		// 管理员接口
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AdminGate(authService))
		{
			adminGroup.POST("/logout", authHandler.Logout)
			adminGroup.GET("/resources", adminHandler.ListResources)
			adminGroup.GET("/resources/:id", adminHandler.GetResourceForm)
			adminGroup.POST("/resources", adminHandler.CreateResource)
			adminGroup.PUT("/resources/:id", adminHandler.UpdateResource)
			adminGroup.DELETE("/resources/:id", adminHandler.DeleteResource)
		}
	}

	return r
}

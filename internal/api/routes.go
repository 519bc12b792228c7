package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamejam_web/internal/api/handlers"
	"gamejam_web/internal/middleware"
	"gamejam_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	signupHandler := handlers.NewSignupHandler(services.Registration)
	gameHandler := handlers.NewGameHandler(services.Game)
	contestHandler := handlers.NewContestHandler(services.Countdown)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/auth/login", authHandler.Login)

		// 徵集截止倒計時（展示用途，無需登入）
		api.GET("/contest/countdown", contestHandler.GetCountdown)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(services.Auth))
	{
		// 會話相關
		authorized.POST("/auth/logout", authHandler.Logout)
		authorized.GET("/user/current", authHandler.CurrentUser)

		// 報名與投稿
		authorized.POST("/signup", signupHandler.SubmitSignup)
		authorized.POST("/game/validate", gameHandler.ValidateGameID)
		authorized.POST("/game/submit", gameHandler.SubmitGameInfo)

		// WebSocket 倒計時推送
		authorized.GET("/contest/countdown/ws", contestHandler.HandleWebSocket)
	}
}

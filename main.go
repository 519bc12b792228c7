package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"gamejam_web/internal/api"
	"gamejam_web/internal/gateway"
	"gamejam_web/internal/models"
	"gamejam_web/internal/repository"
	"gamejam_web/internal/service"
	"gamejam_web/internal/storage"
	"gamejam_web/internal/utils"
	"gamejam_web/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件中讀取設置，如數據庫連接信息和服務器地址等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 設置 JWT 簽名密鑰與有效期
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// 初始化資料庫連接
	// 使用配置中的信息建立到 PostgreSQL 數據庫的連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	// 根據定義的模型自動創建或更新數據庫表結構
	if err := db.AutoMigrate(
		&models.User{},
		&models.SignupRecord{},
		&models.GameEntry{},
		&models.CatalogGame{},
		&models.GamePermission{},
	); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories
	repos := repository.NewRepositories(db)

	// 身份提供方目前使用本地 mock，接入開放平台後替換這裡的實現
	idGateway := gateway.NewMockGateway()

	// 寫入遊戲庫與測試帳號的開發數據
	if err := seedMockData(repos, idGateway); err != nil {
		log.Fatalf("Failed to seed mock data: %v", err)
	}

	// 初始化 services
	services := service.NewServices(repos, idGateway, cfg.DeadlineTime())

	// 啟動倒計時推送
	go services.Countdown.Run()

	// 設置 Gin 路由
	// 創建一個默認的 Gin 路由器並設置路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	// 使用配置中指定的地址啟動 HTTP 服務器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// seedMockData 寫入遊戲庫初始數據，並為 mock 測試帳號創建用戶與遊戲權限
// 真實的遊戲庫與權限數據接入平台後由外部系統提供
func seedMockData(repos *repository.Repositories, gw *gateway.MockGateway) error {
	catalog := []models.CatalogGame{
		{GameID: "12345", Name: "超级冒险", Publisher: "游戏工作室A"},
		{GameID: "23456", Name: "魔法世界", Publisher: "游戏工作室B"},
		{GameID: "34567", Name: "赛车竞速", Publisher: "游戏工作室C"},
	}
	if err := repos.Catalog.Seed(catalog); err != nil {
		return err
	}

	for _, account := range gw.SeedAccounts() {
		user, err := repos.User.FindByTapID(account.TapID)
		if err != nil {
			return err
		}
		if user == nil {
			user = &models.User{
				TapID:    account.TapID,
				Username: account.Username,
				Avatar:   account.Avatar,
			}
			if err := repos.User.Create(user); err != nil {
				return err
			}
		}
		for _, gameID := range account.ManagedGames {
			if err := repos.Catalog.GrantPermission(gameID, user.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

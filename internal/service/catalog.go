package service

import (
	"gamejam_web/internal/repository"
)

// ValidationResult 遊戲庫驗證的三種結果之一：
// 遊戲不存在、存在但無管理員權限、驗證通過（附帶遊戲庫中的正式名稱與廠商）
type ValidationResult struct {
	IsValid       bool   `json:"isValid"`
	GameName      string `json:"gameName,omitempty"`
	PublisherName string `json:"publisherName,omitempty"`
	Message       string `json:"message,omitempty"`
}

// CatalogValidator 抽象遊戲庫的查詢能力，便於替換真實的平台接口
type CatalogValidator interface {
	// Validate 查詢遊戲是否收錄、以及該用戶是否擁有其管理員權限
	// 查詢本身沒有任何副作用，可重複調用
	Validate(gameID string, userID uint) (*ValidationResult, error)
}

type catalogValidator struct {
	catalog repository.CatalogRepository
}

func NewCatalogValidator(catalog repository.CatalogRepository) CatalogValidator {
	return &catalogValidator{catalog: catalog}
}

func (v *catalogValidator) Validate(gameID string, userID uint) (*ValidationResult, error) {
	game, err := v.catalog.FindByGameID(gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return &ValidationResult{
			IsValid: false,
			Message: "游戏ID不存在",
		}, nil
	}

	hasPermission, err := v.catalog.HasPermission(gameID, userID)
	if err != nil {
		return nil, err
	}
	if !hasPermission {
		return &ValidationResult{
			IsValid: false,
			Message: "您所登录的TapTap账号并无该游戏的管理员权限",
		}, nil
	}

	return &ValidationResult{
		IsValid:       true,
		GameName:      game.Name,
		PublisherName: game.Publisher,
		Message:       "验证成功",
	}, nil
}

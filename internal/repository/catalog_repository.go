package repository

import (
	"errors"

	"gorm.io/gorm"

	"gamejam_web/internal/models"
	"gamejam_web/internal/storage"
)

type CatalogRepository interface {
	// FindByGameID 查無此遊戲時返回 (nil, nil)
	FindByGameID(gameID string) (*models.CatalogGame, error)
	HasPermission(gameID string, userID uint) (bool, error)
	Seed(games []models.CatalogGame) error
	GrantPermission(gameID string, userID uint) error
}

type catalogRepository struct {
	db *storage.PostgresDB
}

func NewCatalogRepository(db *storage.PostgresDB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindByGameID(gameID string) (*models.CatalogGame, error) {
	var game models.CatalogGame
	err := r.db.Where("game_id = ?", gameID).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *catalogRepository) HasPermission(gameID string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GamePermission{}).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Seed 寫入遊戲庫初始數據，已存在的遊戲跳過
func (r *catalogRepository) Seed(games []models.CatalogGame) error {
	for i := range games {
		existing, err := r.FindByGameID(games[i].GameID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := r.db.Create(&games[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *catalogRepository) GrantPermission(gameID string, userID uint) error {
	var count int64
	err := r.db.Model(&models.GamePermission{}).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.GamePermission{GameID: gameID, UserID: userID}).Error
}

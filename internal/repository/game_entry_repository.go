package repository

import (
	"errors"

	"gorm.io/gorm"

	"gamejam_web/internal/models"
	"gamejam_web/internal/storage"
)

type GameEntryRepository interface {
	Create(entry *models.GameEntry) error
	Update(entry *models.GameEntry) error
	// FindByUserID 查無記錄時返回 (nil, nil)，投稿資料是選填記錄
	FindByUserID(userID uint) (*models.GameEntry, error)
}

type gameEntryRepository struct {
	db *storage.PostgresDB
}

func NewGameEntryRepository(db *storage.PostgresDB) GameEntryRepository {
	return &gameEntryRepository{db: db}
}

func (r *gameEntryRepository) Create(entry *models.GameEntry) error {
	return r.db.Create(entry).Error
}

func (r *gameEntryRepository) Update(entry *models.GameEntry) error {
	return r.db.Save(entry).Error
}

func (r *gameEntryRepository) FindByUserID(userID uint) (*models.GameEntry, error) {
	var entry models.GameEntry
	err := r.db.Where("user_id = ?", userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

package repository

import (
	"errors"

	"gorm.io/gorm"

	"gamejam_web/internal/models"
	"gamejam_web/internal/storage"
)

type SignupRepository interface {
	Create(record *models.SignupRecord) error
	Update(record *models.SignupRecord) error
	// FindByUserID 查無記錄時返回 (nil, nil)，報名資料是選填記錄
	FindByUserID(userID uint) (*models.SignupRecord, error)
}

type signupRepository struct {
	db *storage.PostgresDB
}

func NewSignupRepository(db *storage.PostgresDB) SignupRepository {
	return &signupRepository{db: db}
}

func (r *signupRepository) Create(record *models.SignupRecord) error {
	return r.db.Create(record).Error
}

func (r *signupRepository) Update(record *models.SignupRecord) error {
	return r.db.Save(record).Error
}

func (r *signupRepository) FindByUserID(userID uint) (*models.SignupRecord, error) {
	var record models.SignupRecord
	err := r.db.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

package models

import (
	"gorm.io/gorm"
)

// CatalogGame 表示遊戲庫中的一款已收錄遊戲
type CatalogGame struct {
	gorm.Model
	GameID    string `gorm:"uniqueIndex;not null" json:"gameId"`
	Name      string `gorm:"not null" json:"name"`
	Publisher string `gorm:"not null" json:"publisher"`
}

// GamePermission 表示某用戶對某款遊戲擁有管理員權限
type GamePermission struct {
	gorm.Model
	GameID string `gorm:"index;not null" json:"gameId"`
	UserID uint   `gorm:"index;not null" json:"userId"`
}

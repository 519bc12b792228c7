package models

import (
	"gorm.io/gorm"
)

// SignupRecord 表示一筆報名聯絡資料
// 每個用戶至多一筆（UserID 唯一索引），重複提交時就地更新
type SignupRecord struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex;not null" json:"-"` // 所屬用戶，創建後不可變
	Phone    string `gorm:"not null" json:"phone"`
	Wechat   string `gorm:"not null" json:"wechat"`
	TeamSize int    `gorm:"not null" json:"teamSize"`
}

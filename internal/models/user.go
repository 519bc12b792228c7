package models

import (
	"gorm.io/gorm"
)

// User 表示透過外部身份提供方登入的參賽者帳號
type User struct {
	gorm.Model        // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	TapID      string `gorm:"uniqueIndex;not null" json:"tapId"` // 外部帳號 ID，必須唯一，登入後不再變動
	Username   string `gorm:"not null" json:"username"`
	Avatar     string `json:"avatar,omitempty"`
}

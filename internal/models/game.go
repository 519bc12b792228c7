package models

import (
	"gorm.io/gorm"
)

// GameEntry 表示一筆投稿遊戲資料
// GameID、GameName、PublisherName 在創建時取自遊戲庫驗證結果，之後永久凍結；
// 其餘字段可在不重新驗證的情況下修改
type GameEntry struct {
	gorm.Model
	UserID           uint        `gorm:"uniqueIndex;not null" json:"-"`
	GameID           string      `gorm:"not null" json:"gameId"`
	GameName         string      `gorm:"not null" json:"gameName"`
	PublisherName    string      `gorm:"not null" json:"publisherName"`
	ReleaseType      ReleaseType `gorm:"not null" json:"releaseType"`
	Theme            Theme       `gorm:"not null" json:"theme"`
	ThemeDescription string      `json:"themeDescription"`
}

// ReleaseType 定義遊戲上線形式的類型
type ReleaseType string

const (
	ReleaseTypeMiniGame    ReleaseType = "小游戏"
	ReleaseTypeTapPlay     ReleaseType = "TapPlay"
	ReleaseTypeWeb         ReleaseType = "WEB"
	ReleaseTypeSparkEditor ReleaseType = "星火编辑器"
)

// Valid 檢查上線形式是否為合法的枚舉值
func (r ReleaseType) Valid() bool {
	switch r {
	case ReleaseTypeMiniGame, ReleaseTypeTapPlay, ReleaseTypeWeb, ReleaseTypeSparkEditor:
		return true
	}
	return false
}

// Theme 定義應徵主題的類型
type Theme string

const (
	ThemeBlindBoxChallenge Theme = "盲盒挑战"
	ThemeEndlessChallenge  Theme = "永无止境的闯关"
	ThemeGameplayFusion    Theme = "玩法缝合怪"
	ThemeClassicRemake     Theme = "经典重开"
	ThemeRestartLife       Theme = "重启人生"
	ThemePetParadise       Theme = "萌宠乐园"
)

// Valid 檢查主題是否為合法的枚舉值
func (t Theme) Valid() bool {
	switch t {
	case ThemeBlindBoxChallenge, ThemeEndlessChallenge, ThemeGameplayFusion,
		ThemeClassicRemake, ThemeRestartLife, ThemePetParadise:
		return true
	}
	return false
}

// MaxThemeDescriptionLen 主題闡述的最大長度（以字符計）
const MaxThemeDescriptionLen = 100

package service

import "errors"

var (
	// ErrSignupRequired 尚未報名就嘗試投稿遊戲
	ErrSignupRequired = errors.New("请先完成报名，再登记投稿游戏")
	// ErrValidationRequired 創建投稿前沒有對該遊戲ID做過成功的驗證
	ErrValidationRequired = errors.New("请先验证游戏ID")
)

// FieldErrors 表示逐字段的表單驗證錯誤
// 這類錯誤在任何存儲操作之前產生，不會觸及存儲
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return "表单校验未通过"
}

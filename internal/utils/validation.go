package utils

import (
	"regexp"
	"unicode/utf8"

	"gamejam_web/internal/models"
)

// 大陸手機號格式：1 開頭，第二位 3-9，共 11 位
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

const minWechatLen = 6

// ValidateSignupFields 對報名表單做逐字段檢查
// 返回 字段名 -> 錯誤訊息 的映射，全部通過時映射為空
func ValidateSignupFields(phone, wechat string, teamSize int) map[string]string {
	errs := make(map[string]string)

	if phone == "" {
		errs["phone"] = "请输入手机号"
	} else if !phonePattern.MatchString(phone) {
		errs["phone"] = "请输入正确的手机号格式"
	}

	if wechat == "" {
		errs["wechat"] = "请输入微信号"
	} else if utf8.RuneCountInString(wechat) < minWechatLen {
		errs["wechat"] = "微信号至少6位字符"
	}

	if teamSize < 1 || teamSize > 50 {
		errs["teamSize"] = "团队人数应在1-50人之间"
	}

	return errs
}

// ValidateGameFields 對投稿表單的可編輯字段做逐字段檢查
func ValidateGameFields(releaseType models.ReleaseType, theme models.Theme, themeDescription string) map[string]string {
	errs := make(map[string]string)

	if !releaseType.Valid() {
		errs["releaseType"] = "请选择上线形式"
	}

	if !theme.Valid() {
		errs["theme"] = "请选择应征主题"
	}

	if utf8.RuneCountInString(themeDescription) > models.MaxThemeDescriptionLen {
		errs["themeDescription"] = "主题阐述不能超过100字"
	}

	return errs
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamejam_web/internal/service"
)

// SignupHandler 處理報名表單相關的請求
type SignupHandler struct {
	registrationService *service.RegistrationService
}

// NewSignupHandler 創建一個新的 SignupHandler 實例
func NewSignupHandler(registrationService *service.RegistrationService) *SignupHandler {
	return &SignupHandler{registrationService: registrationService}
}

// SignupInput 定義報名提交的結構
// Confirmed 為 false 時只做校驗並回顯待確認的內容，不寫入存儲
// 字段不在綁定層標記 required，逐字段校驗統一產生帶訊息的錯誤
type SignupInput struct {
	Phone     string `json:"phone"`
	Wechat    string `json:"wechat"`
	TeamSize  int    `json:"teamSize"`
	Confirmed bool   `json:"confirmed"`
}

// SubmitSignup 處理報名資料的提交與修改
func (h *SignupHandler) SubmitSignup(c *gin.Context) {
	var input SignupInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// 逐字段預檢，不通過時不進入確認與提交
	if errs := h.registrationService.ValidateSignup(input.Phone, input.Wechat, input.TeamSize); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	// 表單有效但尚未確認：回顯待提交的內容，等待用戶確認後再真正寫入
	if !input.Confirmed {
		c.JSON(http.StatusOK, gin.H{
			"needConfirm": true,
			"message":     "请确认报名信息",
			"preview": gin.H{
				"phone":    input.Phone,
				"wechat":   input.Wechat,
				"teamSize": input.TeamSize,
			},
		})
		return
	}

	profile, err := h.registrationService.SubmitSignup(userID, input.Phone, input.Wechat, input.TeamSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "报名成功",
		"user":    profile,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamejam_web/internal/service"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	TapID    string `json:"tapId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 處理用戶登入
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, profile, err := h.authService.Login(input.TapID, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  profile,
	})
}

// Logout 處理用戶登出，撤銷當前會話 token
// 無論結果如何客戶端都應丟棄本地 token
func (h *AuthHandler) Logout(c *gin.Context) {
	token, exists := c.Get("token")
	if exists {
		h.authService.Logout(token.(string))
	}

	c.JSON(http.StatusOK, gin.H{"message": "已退出登录"})
}

// CurrentUser 返回當前用戶的權威檔案
// 每次調用都重新讀取存儲並重新推導報名狀態
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.authService.GetCurrentProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamejam_web/internal/models"
	"gamejam_web/internal/service"
)

// GameHandler 處理投稿遊戲相關的請求
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler 創建一個新的 GameHandler 實例
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// ValidateInput 定義遊戲ID驗證請求的結構
type ValidateInput struct {
	GameID string `json:"gameId" binding:"required"`
}

// ValidateGameID 查詢遊戲庫驗證遊戲ID
// 沒有任何副作用，前端在輸入變化時可反覆調用
func (h *GameHandler) ValidateGameID(c *gin.Context) {
	var input ValidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.gameService.ValidateGameID(userID, input.GameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GameInput 定義投稿提交的結構
// 遊戲的正式名稱與廠商不由客戶端提交，創建時取自驗證結果
type GameInput struct {
	GameID           string `json:"gameId" binding:"required"`
	ReleaseType      string `json:"releaseType"`
	Theme            string `json:"theme"`
	ThemeDescription string `json:"themeDescription"`
	Confirmed        bool   `json:"confirmed"`
}

// SubmitGameInfo 處理投稿遊戲的創建與修改
func (h *GameHandler) SubmitGameInfo(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sub := service.GameSubmission{
		GameID:           input.GameID,
		ReleaseType:      models.ReleaseType(input.ReleaseType),
		Theme:            models.Theme(input.Theme),
		ThemeDescription: input.ThemeDescription,
	}

	// 逐字段預檢，不通過時不進入確認與提交
	if errs := h.gameService.ValidateFields(sub); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	// 表單有效但尚未確認：回顯待提交的內容，等待用戶確認後再真正寫入
	if !input.Confirmed {
		c.JSON(http.StatusOK, gin.H{
			"needConfirm": true,
			"message":     "请确认游戏信息",
			"preview": gin.H{
				"gameId":           input.GameID,
				"releaseType":      input.ReleaseType,
				"theme":            input.Theme,
				"themeDescription": input.ThemeDescription,
			},
		})
		return
	}

	profile, err := h.gameService.SubmitGameInfo(userID, sub)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "游戏信息提交成功",
		"user":    profile,
	})
}

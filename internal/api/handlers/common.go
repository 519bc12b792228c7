package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamejam_web/internal/service"
)

// currentUserID 從上下文取出認證中間件設置的用戶 ID
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
		return 0, false
	}
	return userID.(uint), true
}

// respondServiceError 將服務層錯誤轉換為對應的 HTTP 響應
// 字段錯誤逐字段返回；前置條件錯誤返回單條訊息；
// 其餘視為可重試的遠端失敗，不暴露內部細節
func respondServiceError(c *gin.Context, err error) {
	var fieldErrs *service.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs.Fields})
	case errors.Is(err, service.ErrSignupRequired), errors.Is(err, service.ErrValidationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务暂不可用，请稍后重试"})
	}
}

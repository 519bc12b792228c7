package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"gamejam_web/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// ContestHandler 處理徵集活動相關的請求
type ContestHandler struct {
	countdown *service.CountdownManager
}

// NewContestHandler 創建一個新的 ContestHandler 實例
func NewContestHandler(countdown *service.CountdownManager) *ContestHandler {
	return &ContestHandler{countdown: countdown}
}

// GetCountdown 返回距投稿截止的剩餘秒數
func (h *ContestHandler) GetCountdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"remaining": h.countdown.Remaining(),
		"deadline":  h.countdown.Deadline().Format(time.RFC3339),
	})
}

// HandleWebSocket 升級連接並訂閱倒計時推送
func (h *ContestHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "升級WebSocket失敗"})
		return
	}

	h.countdown.HandleConnection(conn)
}

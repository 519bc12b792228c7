package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// CountdownClient 代表一個訂閱倒計時的 WebSocket 客戶端連接
type CountdownClient struct {
	Conn     *websocket.Conn
	SendChan chan []byte // 消息發送通道，用於異步傳送消息
}

// CountdownMessage 是推送給客戶端的倒計時消息
type CountdownMessage struct {
	Type      string `json:"type"`
	Remaining int64  `json:"remaining"` // 剩餘秒數
	Deadline  string `json:"deadline"`  // RFC3339 截止時間
}

// CountdownManager 向所有在線客戶端推送徵集截止倒計時
// 純展示用途，對報名數據沒有任何影響
type CountdownManager struct {
	deadline time.Time

	clients    map[*CountdownClient]bool
	clientsMux sync.RWMutex // 用於保護 clients map 的讀寫鎖
}

// NewCountdownManager 創建並初始化倒計時服務
func NewCountdownManager(deadline time.Time) *CountdownManager {
	return &CountdownManager{
		deadline: deadline,
		clients:  make(map[*CountdownClient]bool),
	}
}

// Remaining 返回距截止時間的剩餘秒數，已截止時為 0
func (m *CountdownManager) Remaining() int64 {
	remaining := time.Until(m.deadline)
	if remaining < 0 {
		remaining = 0
	}
	return int64(remaining.Seconds())
}

// Deadline 返回截止時間
func (m *CountdownManager) Deadline() time.Time {
	return m.deadline
}

// Run 每秒廣播一次剩餘時間，應在獨立的 goroutine 中運行
func (m *CountdownManager) Run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.broadcast()
	}
}

// HandleConnection 處理新的 WebSocket 連接請求，阻塞直到連接關閉
func (m *CountdownManager) HandleConnection(conn *websocket.Conn) {
	client := &CountdownClient{
		Conn:     conn,
		SendChan: make(chan []byte, 16),
	}

	m.addClient(client)

	// 確保連接關閉時清理資源
	// SendChan 不關閉，writePump 在連接關閉後的下一次寫入失敗時退出
	defer func() {
		m.removeClient(client)
		conn.Close()
	}()

	go m.writePump(client)
	m.readPump(client)
}

// readPump 丟棄客戶端發來的消息，倒計時是單向推送
func (m *CountdownManager) readPump(client *CountdownClient) {
	client.Conn.SetReadLimit(512)
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}
	}
}

// writePump 處理向客戶端發送消息的邏輯
func (m *CountdownManager) writePump(client *CountdownClient) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// broadcast 向所有在線客戶端推送當前剩餘時間
func (m *CountdownManager) broadcast() {
	msg := CountdownMessage{
		Type:      "countdown",
		Remaining: m.Remaining(),
		Deadline:  m.deadline.Format(time.RFC3339),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("countdown message encoding error: %v", err)
		return
	}

	m.clientsMux.RLock()
	clients := make([]*CountdownClient, 0, len(m.clients))
	for client := range m.clients {
		clients = append(clients, client)
	}
	m.clientsMux.RUnlock()

	for _, client := range clients {
		select {
		case client.SendChan <- payload:
			// 消息成功加入發送隊列
		default:
			// 客戶端消息隊列已滿，關閉連接
			m.removeClient(client)
			client.Conn.Close()
		}
	}
}

// addClient 安全地添加新的客戶端連接
func (m *CountdownManager) addClient(client *CountdownClient) {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()
	m.clients[client] = true
}

// removeClient 安全地移除客戶端連接
func (m *CountdownManager) removeClient(client *CountdownClient) {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()
	delete(m.clients, client)
}

// ClientCount 獲取當前在線客戶端數量
func (m *CountdownManager) ClientCount() int {
	m.clientsMux.RLock()
	defer m.clientsMux.RUnlock()
	return len(m.clients)
}

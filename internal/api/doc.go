// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含報名、投稿、認證與徵集倒計時的 HTTP 處理器（handlers）。
// 它負責將 HTTP 請求轉換為適當的服務調用，並將結果轉換回 HTTP 響應；
// 報名與投稿的提交還在這裡實現「先回顯確認、再真正寫入」的兩步流程。
package api

// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前只有身份驗證中間件：解析請求的 Bearer token，
// 檢查其是否已因登出被撤銷，並把用戶身份寫入請求上下文，
// 未登入的請求在這裡被擋下，不會到達任何數據操作。
package middleware

// Package gateway 封裝外部身份提供方（TapTap）的接入。
//
// 核心流程只依賴 Gateway 接口，之後接入真實的開放平台時
// 替換實現即可，狀態機與提交流程不需要改動。
package gateway

// TapAccount 是身份提供方返回的帳號信息
type TapAccount struct {
	TapID    string
	Username string
	Avatar   string
}

// Gateway 抽象身份提供方的登入驗證能力
type Gateway interface {
	// Verify 驗證登入憑證，成功時返回帳號信息
	Verify(tapID, password string) (*TapAccount, error)
}

package gateway

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 帳號不存在或密碼錯誤時返回
var ErrInvalidCredentials = errors.New("账号或密码错误")

// SeedAccount 是 mock 提供方內置的測試帳號
// ManagedGames 記錄該帳號在遊戲庫中擁有管理員權限的遊戲
type SeedAccount struct {
	TapID        string
	Username     string
	Avatar       string
	ManagedGames []string
}

type mockAccount struct {
	SeedAccount
	passwordHash []byte
}

// MockGateway 是身份提供方的本地模擬實現，內置若干測試帳號
type MockGateway struct {
	accounts map[string]*mockAccount
}

// NewMockGateway 創建帶有默認測試帳號的 mock 提供方
func NewMockGateway() *MockGateway {
	g := &MockGateway{accounts: make(map[string]*mockAccount)}

	// 與遊戲庫初始數據對應：前兩款遊戲有權限，第三款沒有
	g.AddAccount(SeedAccount{
		TapID:        "10000001",
		Username:     "测试用户001",
		Avatar:       "https://via.placeholder.com/40",
		ManagedGames: []string{"12345", "23456"},
	}, "jam123456")
	g.AddAccount(SeedAccount{
		TapID:        "10000002",
		Username:     "测试用户002",
		Avatar:       "https://via.placeholder.com/40",
		ManagedGames: nil,
	}, "jam123456")

	return g
}

// AddAccount 註冊一個測試帳號，密碼以 bcrypt 存儲
func (g *MockGateway) AddAccount(account SeedAccount, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	g.accounts[account.TapID] = &mockAccount{SeedAccount: account, passwordHash: hash}
}

// Verify 驗證登入憑證
func (g *MockGateway) Verify(tapID, password string) (*TapAccount, error) {
	account, ok := g.accounts[tapID]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &TapAccount{
		TapID:    account.TapID,
		Username: account.Username,
		Avatar:   account.Avatar,
	}, nil
}

// SeedAccounts 返回內置測試帳號列表，供啟動時寫入開發數據
func (g *MockGateway) SeedAccounts() []SeedAccount {
	accounts := make([]SeedAccount, 0, len(g.accounts))
	for _, account := range g.accounts {
		accounts = append(accounts, account.SeedAccount)
	}
	return accounts
}

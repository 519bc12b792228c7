package service

import (
	"sync"
	"time"

	"gamejam_web/internal/gateway"
	"gamejam_web/internal/models"
	"gamejam_web/internal/repository"
	"gamejam_web/internal/utils"
)

// AuthService 處理登入、登出與當前用戶查詢
type AuthService struct {
	users    repository.UserRepository
	profiles *ProfileService
	gateway  gateway.Gateway

	revokedMux sync.RWMutex
	revoked    map[string]int64 // 已登出的 token -> 其自身的過期時間（unix 秒）
}

func NewAuthService(users repository.UserRepository, profiles *ProfileService, gw gateway.Gateway) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		gateway:  gw,
		revoked:  make(map[string]int64),
	}
}

// Login 通過身份提供方驗證憑證，首次登入時創建本地帳號記錄
// 成功時返回會話 token 與最新的用戶檔案
func (s *AuthService) Login(tapID, password string) (string, *models.UserProfile, error) {
	account, err := s.gateway.Verify(tapID, password)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.FindByTapID(account.TapID)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		user = &models.User{
			TapID:    account.TapID,
			Username: account.Username,
			Avatar:   account.Avatar,
		}
		if err := s.users.Create(user); err != nil {
			return "", nil, err
		}
	}

	token, err := utils.GenerateToken(user.ID, user.TapID)
	if err != nil {
		return "", nil, err
	}

	profile, err := s.profiles.GetProfile(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, profile, nil
}

// Logout 將 token 加入撤銷名單，之後的請求一律視為未登入
// 無論遠端結果如何，客戶端都應丟棄本地 token
func (s *AuthService) Logout(token string) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		// 無效或已過期的 token 本來就進不了系統，無需記錄
		return
	}

	now := time.Now().Unix()

	s.revokedMux.Lock()
	defer s.revokedMux.Unlock()

	// 名單裡已自然過期的 token 順手清掉，避免長期運行下名單只增不減
	for t, exp := range s.revoked {
		if exp <= now {
			delete(s.revoked, t)
		}
	}

	s.revoked[token] = claims.ExpiresAt
}

// IsRevoked 檢查 token 是否已被登出撤銷
func (s *AuthService) IsRevoked(token string) bool {
	s.revokedMux.RLock()
	defer s.revokedMux.RUnlock()
	exp, ok := s.revoked[token]
	return ok && exp > time.Now().Unix()
}

// GetCurrentProfile 重新讀取當前用戶的權威檔案
func (s *AuthService) GetCurrentProfile(userID uint) (*models.UserProfile, error) {
	return s.profiles.GetProfile(userID)
}

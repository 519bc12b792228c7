package service

import (
	"sync"

	"gamejam_web/internal/models"
	"gamejam_web/internal/repository"
	"gamejam_web/internal/utils"
)

// GameService 處理投稿遊戲的兩段式流程：先驗證遊戲ID，後提交
type GameService struct {
	games    repository.GameEntryRepository
	signups  repository.SignupRepository
	profiles *ProfileService

	validator CatalogValidator

	mux sync.RWMutex
	// 每個用戶最近一次驗證成功的遊戲，提交創建時據此校驗前置條件，
	// 正式名稱與廠商也取自這裡而不是客戶端提交的數據。
	// 權限是驗證時刻的快照，提交時不再重查
	validated map[uint]validatedGame
}

type validatedGame struct {
	gameID        string
	gameName      string
	publisherName string
}

func NewGameService(games repository.GameEntryRepository, signups repository.SignupRepository, profiles *ProfileService, validator CatalogValidator) *GameService {
	return &GameService{
		games:     games,
		signups:   signups,
		profiles:  profiles,
		validator: validator,
		validated: make(map[uint]validatedGame),
	}
}

// ValidateGameID 查詢遊戲庫並記錄最近一次驗證成功的結果
// 查詢不觸及存儲，可在每次輸入變化時重複調用
func (s *GameService) ValidateGameID(userID uint, gameID string) (*ValidationResult, error) {
	result, err := s.validator.Validate(gameID, userID)
	if err != nil {
		return nil, err
	}

	if result.IsValid {
		s.mux.Lock()
		s.validated[userID] = validatedGame{
			gameID:        gameID,
			gameName:      result.GameName,
			publisherName: result.PublisherName,
		}
		s.mux.Unlock()
	}

	return result, nil
}

// GameSubmission 投稿表單提交的字段
// 正式名稱與廠商不在其中，創建時取自驗證結果
type GameSubmission struct {
	GameID           string
	ReleaseType      models.ReleaseType
	Theme            models.Theme
	ThemeDescription string
}

// ValidateFields 對投稿表單做逐字段預檢，不觸及存儲
func (s *GameService) ValidateFields(sub GameSubmission) map[string]string {
	return utils.ValidateGameFields(sub.ReleaseType, sub.Theme, sub.ThemeDescription)
}

// SubmitGameInfo 創建或修改當前用戶的投稿遊戲
//
// 已有投稿時進入編輯模式：遊戲ID與遊戲庫字段永久凍結，
// 只更新上線形式、主題與主題闡述，不需要重新驗證。
// 尚無投稿時進入創建模式：必須已完成報名，且最近一次驗證成功的
// 遊戲必須就是提交的遊戲，否則直接失敗且存儲不變
func (s *GameService) SubmitGameInfo(userID uint, sub GameSubmission) (*models.UserProfile, error) {
	if errs := utils.ValidateGameFields(sub.ReleaseType, sub.Theme, sub.ThemeDescription); len(errs) > 0 {
		return nil, &FieldErrors{Fields: errs}
	}

	existing, err := s.games.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.ReleaseType = sub.ReleaseType
		existing.Theme = sub.Theme
		existing.ThemeDescription = sub.ThemeDescription
		if err := s.games.Update(existing); err != nil {
			return nil, err
		}
		return s.profiles.GetProfile(userID)
	}

	signup, err := s.signups.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if signup == nil {
		return nil, ErrSignupRequired
	}

	s.mux.RLock()
	v, ok := s.validated[userID]
	s.mux.RUnlock()
	if !ok || v.gameID != sub.GameID {
		return nil, ErrValidationRequired
	}

	entry := &models.GameEntry{
		UserID:           userID,
		GameID:           v.gameID,
		GameName:         v.gameName,
		PublisherName:    v.publisherName,
		ReleaseType:      sub.ReleaseType,
		Theme:            sub.Theme,
		ThemeDescription: sub.ThemeDescription,
	}
	if err := s.games.Create(entry); err != nil {
		return nil, err
	}

	// 投稿已創建，驗證記錄完成使命；之後的修改不再需要驗證
	s.mux.Lock()
	delete(s.validated, userID)
	s.mux.Unlock()

	return s.profiles.GetProfile(userID)
}

package service

import (
	"gamejam_web/internal/models"
	"gamejam_web/internal/repository"
)

// ProfileService 負責組裝聚合讀取模型
//
// 報名狀態不落庫，每次讀取都根據兩筆選填記錄的存在與否重新推導，
// 提交成功後各流程一律通過這裡取回服務端的最新狀態
type ProfileService struct {
	users   repository.UserRepository
	signups repository.SignupRepository
	games   repository.GameEntryRepository
}

func NewProfileService(users repository.UserRepository, signups repository.SignupRepository, games repository.GameEntryRepository) *ProfileService {
	return &ProfileService{
		users:   users,
		signups: signups,
		games:   games,
	}
}

// GetProfile 重新讀取權威數據並組裝 UserProfile
func (s *ProfileService) GetProfile(userID uint) (*models.UserProfile, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	signup, err := s.signups.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	game, err := s.games.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	return models.NewUserProfile(user, signup, game), nil
}

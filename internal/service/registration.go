package service

import (
	"gamejam_web/internal/models"
	"gamejam_web/internal/repository"
	"gamejam_web/internal/utils"
)

// RegistrationService 處理報名資料的提交與修改
type RegistrationService struct {
	signups  repository.SignupRepository
	profiles *ProfileService
}

func NewRegistrationService(signups repository.SignupRepository, profiles *ProfileService) *RegistrationService {
	return &RegistrationService{
		signups:  signups,
		profiles: profiles,
	}
}

// ValidateSignup 對報名表單做逐字段預檢，不觸及存儲
func (s *RegistrationService) ValidateSignup(phone, wechat string, teamSize int) map[string]string {
	return utils.ValidateSignupFields(phone, wechat, teamSize)
}

// SubmitSignup 創建或就地更新當前用戶的報名資料
//
// 每個用戶至多一筆記錄，重複提交相同數據得到相同的存儲結果。
// 歸屬用戶固定取自會話身份，不接受調用方指定。
// 成功後返回重新組裝的用戶檔案，報名狀態隨之更新
func (s *RegistrationService) SubmitSignup(userID uint, phone, wechat string, teamSize int) (*models.UserProfile, error) {
	if errs := utils.ValidateSignupFields(phone, wechat, teamSize); len(errs) > 0 {
		return nil, &FieldErrors{Fields: errs}
	}

	existing, err := s.signups.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Phone = phone
		existing.Wechat = wechat
		existing.TeamSize = teamSize
		if err := s.signups.Update(existing); err != nil {
			return nil, err
		}
	} else {
		record := &models.SignupRecord{
			UserID:   userID,
			Phone:    phone,
			Wechat:   wechat,
			TeamSize: teamSize,
		}
		if err := s.signups.Create(record); err != nil {
			return nil, err
		}
	}

	return s.profiles.GetProfile(userID)
}

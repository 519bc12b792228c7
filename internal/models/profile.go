package models

// UserStatus 定義用戶報名狀態的類型
//
// 狀態永遠不落庫，每次組裝 UserProfile 時由 DeriveStatus 重新推導，
// 避免快取的狀態與實際記錄出現不一致
type UserStatus string

const (
	StatusNotSignedUp      UserStatus = "not_signed_up"       // 尚未報名
	StatusSignedUpNoGame   UserStatus = "signed_up_no_game"   // 已報名，尚未投稿遊戲
	StatusSignedUpWithGame UserStatus = "signed_up_with_game" // 已報名且已投稿
)

// DeriveStatus 根據兩筆選填記錄的存在與否推導報名狀態
func DeriveStatus(signup *SignupRecord, game *GameEntry) UserStatus {
	if game != nil {
		return StatusSignedUpWithGame
	}
	if signup != nil {
		return StatusSignedUpNoGame
	}
	return StatusNotSignedUp
}

// UserInfo 是對外暴露的帳號基本信息
type UserInfo struct {
	TapID    string `json:"tapId"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// UserProfile 是前端消費的聚合讀取模型
type UserProfile struct {
	UserInfo UserInfo      `json:"userInfo"`
	Signup   *SignupRecord `json:"signupData,omitempty"`
	Game     *GameEntry    `json:"gameInfo,omitempty"`
	Status   UserStatus    `json:"status"`
}

// NewUserProfile 組裝聚合讀取模型，狀態由記錄的存在與否即時推導
func NewUserProfile(user *User, signup *SignupRecord, game *GameEntry) *UserProfile {
	return &UserProfile{
		UserInfo: UserInfo{
			TapID:    user.TapID,
			Username: user.Username,
			Avatar:   user.Avatar,
		},
		Signup: signup,
		Game:   game,
		Status: DeriveStatus(signup, game),
	}
}

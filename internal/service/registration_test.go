package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamejam_web/internal/models"
)

func TestSubmitSignup_CreatesRecordAndAdvancesStatus(t *testing.T) {
	env := newTestEnv(t)
	user := env.newTestUser(t)

	profile, err := env.registration.SubmitSignup(user.ID, "13800000000", "wechat_001", 3)
	require.NoError(t, err)

	assert.Equal(t, models.StatusSignedUpNoGame, profile.Status)
	require.NotNil(t, profile.Signup)
	assert.Equal(t, "13800000000", profile.Signup.Phone)
	assert.Equal(t, "wechat_001", profile.Signup.Wechat)
	assert.Equal(t, 3, profile.Signup.TeamSize)
	assert.Equal(t, user.ID, profile.Signup.UserID)
}

func TestSubmitSignup_RejectsInvalidFieldsBeforeStore(t *testing.T) {
	env := newTestEnv(t)
	user := env.newTestUser(t)

	tests := []struct {
		name     string
		phone    string
		wechat   string
		teamSize int
		field    string
	}{
		{name: "phone too short", phone: "12345", wechat: "abcdef", teamSize: 5, field: "phone"},
		{name: "phone bad prefix", phone: "12800000000", wechat: "abcdef", teamSize: 5, field: "phone"},
		{name: "wechat too short", phone: "13800000000", wechat: "abc", teamSize: 5, field: "wechat"},
		{name: "team size zero", phone: "13800000000", wechat: "abcdef", teamSize: 0, field: "teamSize"},
		{name: "team size over limit", phone: "13800000000", wechat: "abcdef", teamSize: 51, field: "teamSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.registration.SubmitSignup(user.ID, tt.phone, tt.wechat, tt.teamSize)
			require.Error(t, err)

			var fieldErrs *FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Contains(t, fieldErrs.Fields, tt.field)

			// 校驗失敗不觸及存儲
			record, err := env.signups.FindByUserID(user.ID)
			require.NoError(t, err)
			assert.Nil(t, record)
		})
	}
}

func TestSubmitSignup_EditUpdatesInPlace(t *testing.T) {
	env := newTestEnv(t)
	user := env.newTestUser(t)

	first, err := env.registration.SubmitSignup(user.ID, "13800000000", "wechat_001", 3)
	require.NoError(t, err)

	second, err := env.registration.SubmitSignup(user.ID, "13911112222", "wechat_002", 8)
	require.NoError(t, err)

	// 就地更新：同一筆記錄，所有可編輯字段被替換，歸屬不變
	assert.Equal(t, first.Signup.ID, second.Signup.ID)
	assert.Equal(t, "13911112222", second.Signup.Phone)
	assert.Equal(t, "wechat_002", second.Signup.Wechat)
	assert.Equal(t, 8, second.Signup.TeamSize)
	assert.Equal(t, user.ID, second.Signup.UserID)
	assert.Equal(t, models.StatusSignedUpNoGame, second.Status)
}

func TestSubmitSignup_IdenticalResubmissionIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	user := env.newTestUser(t)

	first, err := env.registration.SubmitSignup(user.ID, "13800000000", "wechat_001", 3)
	require.NoError(t, err)

	second, err := env.registration.SubmitSignup(user.ID, "13800000000", "wechat_001", 3)
	require.NoError(t, err)

	assert.Equal(t, first.Signup.ID, second.Signup.ID)
	assert.Equal(t, first.Signup.Phone, second.Signup.Phone)
	assert.Equal(t, first.Signup.Wechat, second.Signup.Wechat)
	assert.Equal(t, first.Signup.TeamSize, second.Signup.TeamSize)
}

func TestValidateSignup_FieldRules(t *testing.T) {
	env := newTestEnv(t)

	assert.Empty(t, env.registration.ValidateSignup("13800000000", "abcdef", 1))
	assert.Empty(t, env.registration.ValidateSignup("19912345678", "wechat_id", 50))

	errs := env.registration.ValidateSignup("12345", "abc", 0)
	assert.Len(t, errs, 3)
}

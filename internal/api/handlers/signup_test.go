package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamejam_web/internal/models"
	"gamejam_web/internal/service"
)

// 內存版報名 repository，行為與 gorm 版一致
type memSignupRepo struct {
	records map[uint]*models.SignupRecord
}

func (r *memSignupRepo) Create(record *models.SignupRecord) error {
	record.ID = uint(len(r.records) + 1)
	stored := *record
	r.records[record.UserID] = &stored
	return nil
}

func (r *memSignupRepo) Update(record *models.SignupRecord) error {
	stored := *record
	r.records[record.UserID] = &stored
	return nil
}

func (r *memSignupRepo) FindByUserID(userID uint) (*models.SignupRecord, error) {
	record, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

type memUserRepo struct {
	users map[uint]*models.User
}

func (r *memUserRepo) Create(user *models.User) error {
	user.ID = uint(len(r.users) + 1)
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByTapID(tapID string) (*models.User, error) {
	for _, user := range r.users {
		if user.TapID == tapID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type memGameRepo struct{}

func (r *memGameRepo) Create(entry *models.GameEntry) error  { return errors.New("not supported") }
func (r *memGameRepo) Update(entry *models.GameEntry) error  { return errors.New("not supported") }
func (r *memGameRepo) FindByUserID(userID uint) (*models.GameEntry, error) {
	return nil, nil
}

func newSignupTestRouter(t *testing.T) (*gin.Engine, *memSignupRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUserRepo{users: map[uint]*models.User{
		1: {TapID: "10000001", Username: "测试用户001"},
	}}
	users.users[1].ID = 1
	signups := &memSignupRepo{records: make(map[uint]*models.SignupRecord)}

	profiles := service.NewProfileService(users, signups, &memGameRepo{})
	registration := service.NewRegistrationService(signups, profiles)
	handler := NewSignupHandler(registration)

	r := gin.New()
	r.POST("/api/signup", func(c *gin.Context) {
		c.Set("userID", uint(1)) // 模擬認證中間件
		handler.SubmitSignup(c)
	})
	return r, signups
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitSignup_FieldErrorsReturned(t *testing.T) {
	r, signups := newSignupTestRouter(t)

	w := postJSON(t, r, "/api/signup", gin.H{
		"phone":     "12345",
		"wechat":    "abcdef",
		"teamSize":  5,
		"confirmed": true,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "phone")

	// 校驗失敗不寫入存儲
	assert.Empty(t, signups.records)
}

func TestSubmitSignup_UnconfirmedReturnsPreviewWithoutCommit(t *testing.T) {
	r, signups := newSignupTestRouter(t)

	w := postJSON(t, r, "/api/signup", gin.H{
		"phone":    "13800000000",
		"wechat":   "abcdef",
		"teamSize": 5,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		NeedConfirm bool `json:"needConfirm"`
		Preview     struct {
			Phone    string `json:"phone"`
			TeamSize int    `json:"teamSize"`
		} `json:"preview"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.NeedConfirm)
	assert.Equal(t, "13800000000", resp.Preview.Phone)
	assert.Equal(t, 5, resp.Preview.TeamSize)

	// 確認之前不寫入存儲
	assert.Empty(t, signups.records)
}

func TestSubmitSignup_ConfirmedCommits(t *testing.T) {
	r, signups := newSignupTestRouter(t)

	w := postJSON(t, r, "/api/signup", gin.H{
		"phone":     "13800000000",
		"wechat":    "abcdef",
		"teamSize":  5,
		"confirmed": true,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.UserProfile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSignedUpNoGame, resp.User.Status)

	require.Len(t, signups.records, 1)
	assert.Equal(t, "13800000000", signups.records[1].Phone)
}

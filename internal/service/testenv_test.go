package service

import (
	"testing"

	"gamejam_web/internal/gateway"
	"gamejam_web/internal/models"
	"gamejam_web/internal/utils"
)

func init() {
	utils.InitJWT("test_secret", 1)
}

// testEnv 組裝一套跑在內存上的完整服務，遊戲庫預置與 mock 數據一致
type testEnv struct {
	users   *fakeUserRepo
	signups *fakeSignupRepo
	games   *fakeGameRepo
	catalog *fakeCatalogRepo

	gw           *gateway.MockGateway
	profiles     *ProfileService
	auth         *AuthService
	registration *RegistrationService
	game         *GameService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:   newFakeUserRepo(),
		signups: newFakeSignupRepo(),
		games:   newFakeGameRepo(),
		catalog: newFakeCatalogRepo(),
	}

	env.catalog.Seed([]models.CatalogGame{
		{GameID: "12345", Name: "超级冒险", Publisher: "游戏工作室A"},
		{GameID: "23456", Name: "魔法世界", Publisher: "游戏工作室B"},
		{GameID: "34567", Name: "赛车竞速", Publisher: "游戏工作室C"},
		{GameID: "game001", Name: "超级冒险", Publisher: "游戏工作室A"},
	})

	env.gw = gateway.NewMockGateway()
	env.gw.AddAccount(gateway.SeedAccount{
		TapID:    "20000001",
		Username: "参赛者甲",
	}, "secret123")

	env.profiles = NewProfileService(env.users, env.signups, env.games)
	env.auth = NewAuthService(env.users, env.profiles, env.gw)
	env.registration = NewRegistrationService(env.signups, env.profiles)
	env.game = NewGameService(env.games, env.signups, env.profiles, NewCatalogValidator(env.catalog))

	return env
}

// newTestUser 創建一個全新登入的用戶並授予指定遊戲的管理員權限
func (env *testEnv) newTestUser(t *testing.T, managedGames ...string) *models.User {
	t.Helper()

	user := &models.User{TapID: "20000001", Username: "参赛者甲"}
	if err := env.users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, gameID := range managedGames {
		if err := env.catalog.GrantPermission(gameID, user.ID); err != nil {
			t.Fatalf("grant permission: %v", err)
		}
	}
	return user
}

// signUp 提交一份有效的報名資料
func (env *testEnv) signUp(t *testing.T, userID uint) *models.UserProfile {
	t.Helper()

	profile, err := env.registration.SubmitSignup(userID, "13900000000", "abcdef", 5)
	if err != nil {
		t.Fatalf("submit signup: %v", err)
	}
	return profile
}

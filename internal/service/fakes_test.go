package service

import (
	"errors"

	"gamejam_web/internal/models"
)

// 測試用的內存版 repository 實現，行為與 gorm 版一致：
// 選填記錄查無時返回 (nil, nil)，用戶查無時返回錯誤

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByTapID(tapID string) (*models.User, error) {
	for _, user := range r.users {
		if user.TapID == tapID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeSignupRepo struct {
	nextID  uint
	records map[uint]*models.SignupRecord // 按 UserID 索引
}

func newFakeSignupRepo() *fakeSignupRepo {
	return &fakeSignupRepo{records: make(map[uint]*models.SignupRecord)}
}

func (r *fakeSignupRepo) Create(record *models.SignupRecord) error {
	if _, exists := r.records[record.UserID]; exists {
		return errors.New("duplicate signup record")
	}
	r.nextID++
	record.ID = r.nextID
	stored := *record
	r.records[record.UserID] = &stored
	return nil
}

func (r *fakeSignupRepo) Update(record *models.SignupRecord) error {
	if _, exists := r.records[record.UserID]; !exists {
		return errors.New("record not found")
	}
	stored := *record
	r.records[record.UserID] = &stored
	return nil
}

func (r *fakeSignupRepo) FindByUserID(userID uint) (*models.SignupRecord, error) {
	record, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

type fakeGameRepo struct {
	nextID  uint
	entries map[uint]*models.GameEntry // 按 UserID 索引
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{entries: make(map[uint]*models.GameEntry)}
}

func (r *fakeGameRepo) Create(entry *models.GameEntry) error {
	if _, exists := r.entries[entry.UserID]; exists {
		return errors.New("duplicate game entry")
	}
	r.nextID++
	entry.ID = r.nextID
	stored := *entry
	r.entries[entry.UserID] = &stored
	return nil
}

func (r *fakeGameRepo) Update(entry *models.GameEntry) error {
	if _, exists := r.entries[entry.UserID]; !exists {
		return errors.New("record not found")
	}
	stored := *entry
	r.entries[entry.UserID] = &stored
	return nil
}

func (r *fakeGameRepo) FindByUserID(userID uint) (*models.GameEntry, error) {
	entry, ok := r.entries[userID]
	if !ok {
		return nil, nil
	}
	copied := *entry
	return &copied, nil
}

type fakeCatalogRepo struct {
	games map[string]models.CatalogGame
	perms map[string]map[uint]bool
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		games: make(map[string]models.CatalogGame),
		perms: make(map[string]map[uint]bool),
	}
}

func (r *fakeCatalogRepo) FindByGameID(gameID string) (*models.CatalogGame, error) {
	game, ok := r.games[gameID]
	if !ok {
		return nil, nil
	}
	return &game, nil
}

func (r *fakeCatalogRepo) HasPermission(gameID string, userID uint) (bool, error) {
	return r.perms[gameID][userID], nil
}

func (r *fakeCatalogRepo) Seed(games []models.CatalogGame) error {
	for _, game := range games {
		if _, exists := r.games[game.GameID]; exists {
			continue
		}
		r.games[game.GameID] = game
	}
	return nil
}

func (r *fakeCatalogRepo) GrantPermission(gameID string, userID uint) error {
	if r.perms[gameID] == nil {
		r.perms[gameID] = make(map[uint]bool)
	}
	r.perms[gameID][userID] = true
	return nil
}

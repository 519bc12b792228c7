package repository

import "gamejam_web/internal/storage"

type Repositories struct {
	User    UserRepository
	Signup  SignupRepository
	Game    GameEntryRepository
	Catalog CatalogRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Signup:  NewSignupRepository(db),
		Game:    NewGameEntryRepository(db),
		Catalog: NewCatalogRepository(db),
	}
}

package service

import (
	"time"

	"gamejam_web/internal/gateway"
	"gamejam_web/internal/repository"
)

type Services struct {
	Auth         *AuthService
	Registration *RegistrationService
	Game         *GameService
	Countdown    *CountdownManager
}

func NewServices(repos *repository.Repositories, gw gateway.Gateway, deadline time.Time) *Services {
	profiles := NewProfileService(repos.User, repos.Signup, repos.Game)
	validator := NewCatalogValidator(repos.Catalog)

	return &Services{
		Auth:         NewAuthService(repos.User, profiles, gw),
		Registration: NewRegistrationService(repos.Signup, profiles),
		Game:         NewGameService(repos.Game, repos.Signup, profiles, validator),
		Countdown:    NewCountdownManager(deadline),
	}
}

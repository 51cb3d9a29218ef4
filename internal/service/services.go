package service

import (
	"github.com/moodgarden/backend/internal/config"
	"github.com/moodgarden/backend/internal/repository"
)

type Services struct {
	Tokens *TokenIssuer
	Auth   *AuthService
	Flower *FlowerService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	tokens := NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	return &Services{
		Tokens: tokens,
		Auth:   NewAuthService(repos.User, tokens),
		Flower: NewFlowerService(repos.Flower),
	}
}

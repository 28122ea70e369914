package usecase

import (
	"realtor-listings/internal/data/repository"
	"realtor-listings/pkg/token"
	"realtor-listings/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	Home HomeService
}

func NewService(repo *repository.Repository, tokens *token.Maker, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo, tokens, config, log),
		Home: NewHomeService(repo, log),
	}
}

package repository

import (
	"realtor-listings/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Home    HomeRepository
	Image   ImageRepository
	Message MessageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Home:    NewHomeRepository(db, log),
		Image:   NewImageRepository(db, log),
		Message: NewMessageRepository(db, log),
	}
}

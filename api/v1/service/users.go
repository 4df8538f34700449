// Package service holds the application logic between handlers and the store.
package service

import (
	"context"

	"github.com/bp0001/backend/api/v1/database"
	"github.com/bp0001/backend/api/v1/models"
	"go.uber.org/zap"
)

type UserService struct {
	repo database.UserRepository
	log  *zap.SugaredLogger
}

func NewUserService(repo database.UserRepository, log *zap.SugaredLogger) *UserService {
	return &UserService{
		repo: repo,
		log:  log.Named("service.users"),
	}
}

// FindByUsername looks the user up in the repository. A missing user is
// reported as found == false with a nil error; any other repository error is
// returned as is.
func (s *UserService) FindByUsername(ctx context.Context, username string) (models.User, bool, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if database.IsUserNotFoundError(err) {
			s.log.Debugw("user not found", "username", username)
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	if user == nil {
		return models.User{}, false, nil
	}
	return *user, true, nil
}

// Package impl contains the concrete use case implementations.
package impl

import (
	"context"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
	}
}

// GetUser retrieves the user row behind an identity-provider subject.
func (s *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

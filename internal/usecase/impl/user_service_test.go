package impl

import (
	"context"
	"testing"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	mockRepo "pricewatch/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(UserServiceParams{UserRepo: userRepo})
	ctx := context.Background()

	expected := &entity.User{ID: "user-1", Email: "user@example.com", Role: entity.RoleAdmin}

	userRepo.EXPECT().
		FindByID(ctx, "user-1").
		Return(expected, nil)

	user, err := service.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(UserServiceParams{UserRepo: userRepo})
	ctx := context.Background()

	userRepo.EXPECT().
		FindByID(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	user, err := service.GetUser(ctx, "ghost")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

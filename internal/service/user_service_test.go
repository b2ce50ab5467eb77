package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"clubhub/internal/cache"
	cachemocks "clubhub/internal/cache/mocks"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	repomocks "clubhub/internal/repository/mocks"
)

func TestUserService_GetUser(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.User{
		ID:    userID,
		Email: "coach@example.com",
		Name:  "Coach",
	}

	t.Run("returns cached user without hitting the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), cache.UserCacheKey(userID.Hex()), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				*dest.(*models.User) = *user
				return true, nil
			})

		service := NewUserService(mockRepo, mockCache)

		got, err := service.GetUser(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("fetches from database and caches on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), cache.UserCacheKey(userID.Hex()), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(user, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), cache.UserCacheKey(userID.Hex()), user, 15*time.Minute).
			Return(nil)

		service := NewUserService(mockRepo, mockCache)

		got, err := service.GetUser(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("returns error when user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(nil, apperrors.ErrUserNotFound)

		service := NewUserService(mockRepo, mockCache)

		got, err := service.GetUser(context.Background(), userID)

		assert.Nil(t, got)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("updates fields and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		newName := "Head Coach"
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, Email: "coach@example.com", Name: "Coach"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.User) error {
				assert.Equal(t, newName, user.Name)
				return nil
			})
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Delete(gomock.Any(), cache.UserCacheKey(userID.Hex())).
			Return(nil)

		service := NewUserService(mockRepo, mockCache)

		user, err := service.UpdateUser(context.Background(), userID, &models.UpdateUserRequest{
			Name: &newName,
		})

		require.NoError(t, err)
		assert.Equal(t, newName, user.Name)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deletes user and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := primitive.NewObjectID()
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().
			Delete(gomock.Any(), userID).
			Return(nil)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Delete(gomock.Any(), cache.UserCacheKey(userID.Hex())).
			Return(nil)

		service := NewUserService(mockRepo, mockCache)

		assert.NoError(t, service.DeleteUser(context.Background(), userID))
	})
}

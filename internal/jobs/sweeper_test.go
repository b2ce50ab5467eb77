package jobs

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "clubhub/internal/repository/mocks"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestInvitationSweeper_Sweep(t *testing.T) {
	t.Run("removes expired invitations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockInvitationRepository(ctrl)
		mockRepo.EXPECT().
			DeleteExpired(gomock.Any(), gomock.Any()).
			Return(3, nil)

		sweeper := NewInvitationSweeper(mockRepo, newTestLogger(), "0 * * * *")

		removed, err := sweeper.Sweep(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, removed)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockInvitationRepository(ctrl)
		mockRepo.EXPECT().
			DeleteExpired(gomock.Any(), gomock.Any()).
			Return(0, assert.AnError)

		sweeper := NewInvitationSweeper(mockRepo, newTestLogger(), "0 * * * *")

		_, err := sweeper.Sweep(context.Background())

		assert.Error(t, err)
	})

	t.Run("passes the current time as cutoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		before := time.Now()
		mockRepo := repomocks.NewMockInvitationRepository(ctrl)
		mockRepo.EXPECT().
			DeleteExpired(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, now time.Time) (int, error) {
				assert.False(t, now.Before(before))
				assert.False(t, now.After(time.Now()))
				return 0, nil
			})

		sweeper := NewInvitationSweeper(mockRepo, newTestLogger(), "0 * * * *")

		_, err := sweeper.Sweep(context.Background())
		require.NoError(t, err)
	})
}

func TestInvitationSweeper_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockInvitationRepository(ctrl)
		sweeper := NewInvitationSweeper(mockRepo, newTestLogger(), "0 * * * *")

		require.NoError(t, sweeper.Start())
		sweeper.Stop()
	})

	t.Run("rejects invalid schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockInvitationRepository(ctrl)
		sweeper := NewInvitationSweeper(mockRepo, newTestLogger(), "not a schedule")

		assert.Error(t, sweeper.Start())
	})
}

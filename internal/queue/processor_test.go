package queue

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"clubhub/internal/notification"
	notificationmocks "clubhub/internal/notification/mocks"
	"clubhub/internal/rbac"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := NewMemoryQueue(10)
	mockMailer := notificationmocks.NewMockMailer(ctrl)

	processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 2)

	assert.NotNil(t, processor)
	assert.Equal(t, q, processor.queue)
	assert.Equal(t, mockMailer, processor.mailer)
	assert.Equal(t, 2, processor.workerCount)
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := NewMemoryQueue(10)
		mockMailer := notificationmocks.NewMockMailer(ctrl)
		processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 3)

		ctx := context.Background()
		processor.Start(ctx)

		// Give workers time to start
		time.Sleep(50 * time.Millisecond)

		// Stop should complete without hanging
		done := make(chan struct{})
		go func() {
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := NewMemoryQueue(10)
		mockMailer := notificationmocks.NewMockMailer(ctrl)
		processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 1)

		ctx := context.Background()
		processor.Start(ctx)

		// Multiple stops should not panic
		processor.Stop()
		processor.Stop()
		processor.Stop()
	})
}

func TestProcessor_ProcessJob(t *testing.T) {
	t.Run("successfully delivers invitation email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := NewMemoryQueue(10)
		mockMailer := notificationmocks.NewMockMailer(ctrl)
		processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 1)

		job := NotificationJob{
			InvitationID: primitive.NewObjectID(),
			OrgName:      "Riverside FC",
			Email:        "coach@example.com",
			Token:        "8f14e45f-ea38-4cde-9c6c-1f4a7b2d9e01",
			Role:         rbac.RoleCoach,
		}

		mockMailer.EXPECT().
			SendInvitation(gomock.Any(), notification.InvitationEmail{
				To:      "coach@example.com",
				OrgName: "Riverside FC",
				Role:    "coach",
				Token:   "8f14e45f-ea38-4cde-9c6c-1f4a7b2d9e01",
			}).
			Return(nil)

		_ = q.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Wait for job to be processed
		time.Sleep(200 * time.Millisecond)

		cancel()
		processor.Stop()

		assert.Equal(t, 0, q.Len())
	})

	t.Run("handles delivery failure with retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := NewMemoryQueue(10)
		mockMailer := notificationmocks.NewMockMailer(ctrl)
		processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 1)

		job := NotificationJob{
			InvitationID: primitive.NewObjectID(),
			Email:        "coach@example.com",
			RetryCount:   0,
		}

		// First attempt fails
		mockMailer.EXPECT().
			SendInvitation(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_ = q.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Wait for initial failure and retry scheduling
		time.Sleep(200 * time.Millisecond)

		cancel()
		processor.Stop()

		// Job should have been handled (either retried or dropped)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := NewMemoryQueue(10)
		mockMailer := notificationmocks.NewMockMailer(ctrl)
		processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 1)

		job := NotificationJob{
			InvitationID: primitive.NewObjectID(),
			Email:        "coach@example.com",
			RetryCount:   MaxRetries - 1, // One more failure will trigger max retries
		}

		// Exactly one attempt, no retry scheduled
		mockMailer.EXPECT().
			SendInvitation(gomock.Any(), gomock.Any()).
			Return(assert.AnError).
			Times(1)

		_ = q.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Wait for job to be processed
		time.Sleep(200 * time.Millisecond)

		cancel()
		processor.Stop()

		assert.Equal(t, 0, q.Len())
	})
}

func TestProcessor_HandleFailure(t *testing.T) {
	t.Run("uses exponential backoff", func(t *testing.T) {
		// RetryDelay * 2^(retryCount-1)
		// RetryCount 1: 5s * 1 = 5s
		// RetryCount 2: 5s * 2 = 10s
		// RetryCount 3: 5s * 4 = 20s

		delays := []time.Duration{
			RetryDelay * time.Duration(1<<0), // 5s
			RetryDelay * time.Duration(1<<1), // 10s
			RetryDelay * time.Duration(1<<2), // 20s
		}

		assert.Equal(t, 5*time.Second, delays[0])
		assert.Equal(t, 10*time.Second, delays[1])
		assert.Equal(t, 20*time.Second, delays[2])
	})
}

func TestProcessor_WorkerShutdown(t *testing.T) {
	t.Run("workers shut down gracefully on context cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := NewMemoryQueue(10)
		mockMailer := notificationmocks.NewMockMailer(ctrl)
		processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 3)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Give workers time to start
		time.Sleep(50 * time.Millisecond)

		// Cancel context
		cancel()

		// Stop should complete quickly
		done := make(chan struct{})
		go func() {
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Fatal("Graceful shutdown timed out")
		}
	})
}

func TestProcessor_Concurrent(t *testing.T) {
	t.Run("delivers multiple emails concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := NewMemoryQueue(100)
		mockMailer := notificationmocks.NewMockMailer(ctrl)
		processor := NewProcessor(q, mockMailer, newTestLogger(), nil, 5)

		jobCount := 10

		var mu sync.Mutex
		delivered := make(map[string]bool)
		mockMailer.EXPECT().
			SendInvitation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email notification.InvitationEmail) error {
				mu.Lock()
				defer mu.Unlock()
				delivered[email.Token] = true
				return nil
			}).
			Times(jobCount)

		// Enqueue jobs
		tokens := make([]string, jobCount)
		for i := 0; i < jobCount; i++ {
			tokens[i] = primitive.NewObjectID().Hex()
			_ = q.Enqueue(NotificationJob{
				InvitationID: primitive.NewObjectID(),
				Email:        "coach@example.com",
				Token:        tokens[i],
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Wait for all jobs to be processed
		time.Sleep(500 * time.Millisecond)

		cancel()
		processor.Stop()

		// Verify all emails were delivered
		mu.Lock()
		defer mu.Unlock()
		require.Len(t, delivered, jobCount)
		for _, token := range tokens {
			assert.True(t, delivered[token], "email with token %s was not delivered", token)
		}
	})
}

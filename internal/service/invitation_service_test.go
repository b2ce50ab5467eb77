package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/queue"
	queuemocks "clubhub/internal/queue/mocks"
	"clubhub/internal/rbac"
	repomocks "clubhub/internal/repository/mocks"
)

type invitationServiceMocks struct {
	invitationRepo *repomocks.MockInvitationRepository
	membershipRepo *repomocks.MockMembershipRepository
	orgRepo        *repomocks.MockOrganizationRepository
	userRepo       *repomocks.MockUserRepository
	queue          *queuemocks.MockQueue
}

func newTestInvitationService(t *testing.T, ctrl *gomock.Controller) (*InvitationService, invitationServiceMocks) {
	t.Helper()

	m := invitationServiceMocks{
		invitationRepo: repomocks.NewMockInvitationRepository(ctrl),
		membershipRepo: repomocks.NewMockMembershipRepository(ctrl),
		orgRepo:        repomocks.NewMockOrganizationRepository(ctrl),
		userRepo:       repomocks.NewMockUserRepository(ctrl),
		queue:          queuemocks.NewMockQueue(ctrl),
	}

	service := NewInvitationService(
		m.invitationRepo, m.membershipRepo, m.orgRepo, m.userRepo,
		m.queue, newTestLogger(),
	)
	return service, m
}

func TestInvitationService_CreateInvitation(t *testing.T) {
	orgID := primitive.NewObjectID()
	inviterID := primitive.NewObjectID()
	org := &models.Organization{ID: orgID, Name: "Riverside Rowing Club", Seats: 25}

	createReq := &models.CreateInvitationRequest{
		Email: "NewCoach@Example.com",
		Role:  rbac.RoleCoach,
	}

	t.Run("creates invitation and queues its email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(org, nil)
		m.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "newcoach@example.com").
			Return(nil, apperrors.ErrUserNotFound)
		m.invitationRepo.EXPECT().
			FindPendingByOrgAndEmail(gomock.Any(), orgID, "newcoach@example.com").
			Return(nil, apperrors.ErrInvitationNotFound)
		m.membershipRepo.EXPECT().
			CountByOrgID(gomock.Any(), orgID).
			Return(10, nil)
		m.invitationRepo.EXPECT().
			CountPendingByOrgID(gomock.Any(), orgID).
			Return(2, nil)
		m.invitationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, invitation *models.Invitation) error {
				invitation.ID = primitive.NewObjectID()
				assert.Equal(t, "newcoach@example.com", invitation.Email)
				assert.Equal(t, rbac.RoleCoach, invitation.Role)
				assert.NotEmpty(t, invitation.Token)
				assert.True(t, invitation.ExpiresAt.After(time.Now()))
				return nil
			})
		m.queue.EXPECT().
			Enqueue(gomock.Any()).
			DoAndReturn(func(job queue.NotificationJob) error {
				assert.Equal(t, "newcoach@example.com", job.Email)
				assert.Equal(t, org.Name, job.OrgName)
				assert.Equal(t, rbac.RoleCoach, job.Role)
				assert.NotEmpty(t, job.Token)
				return nil
			})

		invitation, err := service.CreateInvitation(context.Background(), orgID, inviterID, createReq)

		require.NoError(t, err)
		assert.Equal(t, inviterID, invitation.InvitedBy)
	})

	t.Run("rejects email that already belongs to a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)
		existingUser := &models.User{ID: primitive.NewObjectID(), Email: "newcoach@example.com"}

		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(org, nil)
		m.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "newcoach@example.com").
			Return(existingUser, nil)
		m.membershipRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, existingUser.ID).
			Return(&models.Membership{OrgID: orgID, UserID: existingUser.ID, Role: rbac.RoleViewer}, nil)

		invitation, err := service.CreateInvitation(context.Background(), orgID, inviterID, createReq)

		assert.Nil(t, invitation)
		assert.Equal(t, apperrors.ErrAlreadyMember, err)
	})

	t.Run("rejects duplicate pending invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(org, nil)
		m.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "newcoach@example.com").
			Return(nil, apperrors.ErrUserNotFound)
		m.invitationRepo.EXPECT().
			FindPendingByOrgAndEmail(gomock.Any(), orgID, "newcoach@example.com").
			Return(&models.Invitation{OrgID: orgID, Email: "newcoach@example.com"}, nil)

		invitation, err := service.CreateInvitation(context.Background(), orgID, inviterID, createReq)

		assert.Nil(t, invitation)
		assert.Equal(t, apperrors.ErrPendingInvitation, err)
	})

	t.Run("rejects invitation beyond the seat limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(org, nil)
		m.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "newcoach@example.com").
			Return(nil, apperrors.ErrUserNotFound)
		m.invitationRepo.EXPECT().
			FindPendingByOrgAndEmail(gomock.Any(), orgID, "newcoach@example.com").
			Return(nil, apperrors.ErrInvitationNotFound)
		m.membershipRepo.EXPECT().
			CountByOrgID(gomock.Any(), orgID).
			Return(20, nil)
		m.invitationRepo.EXPECT().
			CountPendingByOrgID(gomock.Any(), orgID).
			Return(5, nil)

		invitation, err := service.CreateInvitation(context.Background(), orgID, inviterID, createReq)

		assert.Nil(t, invitation)
		assert.Equal(t, apperrors.ErrSeatsExceeded, err)
	})

	t.Run("rolls invitation back when queue is full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		var invitationID primitive.ObjectID
		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(org, nil)
		m.userRepo.EXPECT().
			FindByEmail(gomock.Any(), "newcoach@example.com").
			Return(nil, apperrors.ErrUserNotFound)
		m.invitationRepo.EXPECT().
			FindPendingByOrgAndEmail(gomock.Any(), orgID, "newcoach@example.com").
			Return(nil, apperrors.ErrInvitationNotFound)
		m.membershipRepo.EXPECT().
			CountByOrgID(gomock.Any(), orgID).
			Return(10, nil)
		m.invitationRepo.EXPECT().
			CountPendingByOrgID(gomock.Any(), orgID).
			Return(0, nil)
		m.invitationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, invitation *models.Invitation) error {
				invitation.ID = primitive.NewObjectID()
				invitationID = invitation.ID
				return nil
			})
		m.queue.EXPECT().
			Enqueue(gomock.Any()).
			Return(queue.ErrQueueFull)
		m.invitationRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID) error {
				assert.Equal(t, invitationID, id)
				return nil
			})

		invitation, err := service.CreateInvitation(context.Background(), orgID, inviterID, createReq)

		assert.Nil(t, invitation)
		assert.Equal(t, apperrors.ErrNotificationQueueFull, err)
	})
}

func TestInvitationService_CancelInvitation(t *testing.T) {
	orgID := primitive.NewObjectID()
	invitationID := primitive.NewObjectID()

	t.Run("cancels a pending invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&models.Invitation{ID: invitationID, OrgID: orgID}, nil)
		m.invitationRepo.EXPECT().
			Delete(gomock.Any(), invitationID).
			Return(nil)

		err := service.CancelInvitation(context.Background(), invitationID, orgID)

		assert.NoError(t, err)
	})

	t.Run("hides invitations of other organizations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&models.Invitation{ID: invitationID, OrgID: primitive.NewObjectID()}, nil)

		err := service.CancelInvitation(context.Background(), invitationID, orgID)

		assert.Equal(t, apperrors.ErrInvitationNotFound, err)
	})
}

func TestInvitationService_AcceptInvitation(t *testing.T) {
	orgID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	inviterID := primitive.NewObjectID()
	token := "8f14e45f-ea38-4cde-9c6c-1f4a7b2d9e01"

	validInvitation := func() *models.Invitation {
		return &models.Invitation{
			ID:        primitive.NewObjectID(),
			OrgID:     orgID,
			Email:     "newcoach@example.com",
			Role:      rbac.RoleCoach,
			Token:     token,
			InvitedBy: inviterID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
	}

	t.Run("accepts invitation and creates membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)
		invitation := validInvitation()

		m.invitationRepo.EXPECT().
			FindByToken(gomock.Any(), token).
			Return(invitation, nil)
		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&models.Organization{ID: orgID, Seats: 25}, nil)
		m.membershipRepo.EXPECT().
			CountByOrgID(gomock.Any(), orgID).
			Return(5, nil)
		m.membershipRepo.EXPECT().
			FindByUserID(gomock.Any(), userID).
			Return([]models.Membership{{OrgID: primitive.NewObjectID(), UserID: userID}}, nil)
		m.membershipRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, membership *models.Membership) error {
				assert.Equal(t, orgID, membership.OrgID)
				assert.Equal(t, userID, membership.UserID)
				assert.Equal(t, rbac.RoleCoach, membership.Role)
				assert.Equal(t, inviterID, membership.InvitedBy)
				assert.False(t, membership.Primary)
				return nil
			})
		m.invitationRepo.EXPECT().
			Delete(gomock.Any(), invitation.ID).
			Return(nil)

		resp, err := service.AcceptInvitation(context.Background(), token, userID, "NewCoach@example.com")

		require.NoError(t, err)
		assert.Equal(t, orgID.Hex(), resp.OrgID)
	})

	t.Run("first organization becomes the user's current one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)
		invitation := validInvitation()

		m.invitationRepo.EXPECT().
			FindByToken(gomock.Any(), token).
			Return(invitation, nil)
		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&models.Organization{ID: orgID, Seats: 25}, nil)
		m.membershipRepo.EXPECT().
			CountByOrgID(gomock.Any(), orgID).
			Return(5, nil)
		m.membershipRepo.EXPECT().
			FindByUserID(gomock.Any(), userID).
			Return([]models.Membership{}, nil)
		m.membershipRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, membership *models.Membership) error {
				assert.True(t, membership.Primary)
				return nil
			})
		m.invitationRepo.EXPECT().
			Delete(gomock.Any(), invitation.ID).
			Return(nil)

		_, err := service.AcceptInvitation(context.Background(), token, userID, "newcoach@example.com")

		assert.NoError(t, err)
	})

	t.Run("rejects mismatched email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.invitationRepo.EXPECT().
			FindByToken(gomock.Any(), token).
			Return(validInvitation(), nil)

		resp, err := service.AcceptInvitation(context.Background(), token, userID, "somebodyelse@example.com")

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvitationEmailMismatch, err)
	})

	t.Run("rejects expired invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)
		invitation := validInvitation()
		invitation.ExpiresAt = time.Now().Add(-time.Hour)

		m.invitationRepo.EXPECT().
			FindByToken(gomock.Any(), token).
			Return(invitation, nil)

		resp, err := service.AcceptInvitation(context.Background(), token, userID, "newcoach@example.com")

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvitationExpired, err)
	})

	t.Run("rejects acceptance when the organization is full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.invitationRepo.EXPECT().
			FindByToken(gomock.Any(), token).
			Return(validInvitation(), nil)
		m.orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&models.Organization{ID: orgID, Seats: 5}, nil)
		m.membershipRepo.EXPECT().
			CountByOrgID(gomock.Any(), orgID).
			Return(5, nil)

		resp, err := service.AcceptInvitation(context.Background(), token, userID, "newcoach@example.com")

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrSeatsExceeded, err)
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.invitationRepo.EXPECT().
			FindByToken(gomock.Any(), "bad-token").
			Return(nil, apperrors.ErrInvitationNotFound)

		resp, err := service.AcceptInvitation(context.Background(), "bad-token", userID, "newcoach@example.com")

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvitationNotFound, err)
	})
}

func TestInvitationService_DeclineInvitation(t *testing.T) {
	invitationID := primitive.NewObjectID()

	t.Run("declines own invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&models.Invitation{ID: invitationID, Email: "newcoach@example.com"}, nil)
		m.invitationRepo.EXPECT().
			Delete(gomock.Any(), invitationID).
			Return(nil)

		err := service.DeclineInvitation(context.Background(), invitationID, "NewCoach@Example.com")

		assert.NoError(t, err)
	})

	t.Run("rejects declining someone else's invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestInvitationService(t, ctrl)

		m.invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitationID).
			Return(&models.Invitation{ID: invitationID, Email: "newcoach@example.com"}, nil)

		err := service.DeclineInvitation(context.Background(), invitationID, "intruder@example.com")

		assert.Equal(t, apperrors.ErrInvitationEmailMismatch, err)
	})
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/rbac"
	repomocks "clubhub/internal/repository/mocks"
)

func TestClassService_CreateClass(t *testing.T) {
	t.Run("creates class with empty roster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orgID := primitive.NewObjectID()

		mockClassRepo := repomocks.NewMockClassRepository(ctrl)
		mockClassRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, class *models.Class) error {
				class.ID = primitive.NewObjectID()
				assert.Equal(t, orgID, class.OrgID)
				assert.NotNil(t, class.Roster)
				assert.Empty(t, class.Roster)
				return nil
			})

		service := NewClassService(mockClassRepo, repomocks.NewMockMembershipRepository(ctrl))

		class, err := service.CreateClass(context.Background(), orgID, &models.CreateClassRequest{
			Name: "U12 Tuesday group",
		})

		require.NoError(t, err)
		assert.Equal(t, "U12 Tuesday group", class.Name)
	})
}

func TestClassService_AddRosterEntry(t *testing.T) {
	orgID := primitive.NewObjectID()
	classID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	t.Run("enrolls an organization member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMembershipRepo := repomocks.NewMockMembershipRepository(ctrl)
		mockMembershipRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, userID).
			Return(&models.Membership{OrgID: orgID, UserID: userID, Role: rbac.RoleViewer}, nil)

		mockClassRepo := repomocks.NewMockClassRepository(ctrl)
		mockClassRepo.EXPECT().
			AddRosterEntry(gomock.Any(), orgID, classID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, oid, cid primitive.ObjectID, entry models.RosterEntry) error {
				assert.Equal(t, userID, entry.UserID)
				assert.Equal(t, rbac.ClassRoleStudent, entry.Role)
				assert.False(t, entry.AddedAt.IsZero())
				return nil
			})
		mockClassRepo.EXPECT().
			FindByID(gomock.Any(), orgID, classID).
			Return(&models.Class{ID: classID, OrgID: orgID}, nil)

		service := NewClassService(mockClassRepo, mockMembershipRepo)

		class, err := service.AddRosterEntry(context.Background(), orgID, classID, &models.AddRosterEntryRequest{
			UserID: userID.Hex(),
			Role:   rbac.ClassRoleStudent,
		})

		require.NoError(t, err)
		assert.Equal(t, classID, class.ID)
	})

	t.Run("rejects users outside the organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMembershipRepo := repomocks.NewMockMembershipRepository(ctrl)
		mockMembershipRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, userID).
			Return(nil, apperrors.ErrNotOrgMember)

		service := NewClassService(repomocks.NewMockClassRepository(ctrl), mockMembershipRepo)

		class, err := service.AddRosterEntry(context.Background(), orgID, classID, &models.AddRosterEntryRequest{
			UserID: userID.Hex(),
			Role:   rbac.ClassRoleStudent,
		})

		assert.Nil(t, class)
		assert.Equal(t, apperrors.ErrNotOrgMember, err)
	})

	t.Run("rejects malformed user IDs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewClassService(repomocks.NewMockClassRepository(ctrl), repomocks.NewMockMembershipRepository(ctrl))

		class, err := service.AddRosterEntry(context.Background(), orgID, classID, &models.AddRosterEntryRequest{
			UserID: "not-an-object-id",
			Role:   rbac.ClassRoleStudent,
		})

		assert.Nil(t, class)
		assert.Equal(t, apperrors.ErrNotOrgMember, err)
	})
}

func TestClassService_RenameClass(t *testing.T) {
	t.Run("renames and returns the class", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orgID := primitive.NewObjectID()
		classID := primitive.NewObjectID()

		mockClassRepo := repomocks.NewMockClassRepository(ctrl)
		mockClassRepo.EXPECT().
			Rename(gomock.Any(), orgID, classID, "U14 Tuesday group").
			Return(nil)
		mockClassRepo.EXPECT().
			FindByID(gomock.Any(), orgID, classID).
			Return(&models.Class{ID: classID, OrgID: orgID, Name: "U14 Tuesday group"}, nil)

		service := NewClassService(mockClassRepo, repomocks.NewMockMembershipRepository(ctrl))

		class, err := service.RenameClass(context.Background(), orgID, classID, &models.UpdateClassRequest{
			Name: "U14 Tuesday group",
		})

		require.NoError(t, err)
		assert.Equal(t, "U14 Tuesday group", class.Name)
	})
}

func TestClassService_RecordResult(t *testing.T) {
	orgID := primitive.NewObjectID()
	classID := primitive.NewObjectID()
	studentID := primitive.NewObjectID()
	coachID := primitive.NewObjectID()

	t.Run("records a result for a roster member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClassRepo := repomocks.NewMockClassRepository(ctrl)
		mockClassRepo.EXPECT().
			AddResult(gomock.Any(), orgID, classID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, oid, cid primitive.ObjectID, entry models.ResultEntry) error {
				assert.Equal(t, studentID, entry.UserID)
				assert.Equal(t, "100m freestyle", entry.Label)
				assert.Equal(t, "1:02.5", entry.Value)
				assert.Equal(t, coachID, entry.RecordedBy)
				assert.False(t, entry.RecordedAt.IsZero())
				return nil
			})
		mockClassRepo.EXPECT().
			FindByID(gomock.Any(), orgID, classID).
			Return(&models.Class{
				ID:    classID,
				OrgID: orgID,
				Results: []models.ResultEntry{
					{UserID: studentID, Label: "100m freestyle", Value: "1:02.5", RecordedBy: coachID},
				},
			}, nil)

		service := NewClassService(mockClassRepo, repomocks.NewMockMembershipRepository(ctrl))

		class, err := service.RecordResult(context.Background(), orgID, classID, coachID, &models.RecordResultRequest{
			UserID: studentID.Hex(),
			Label:  "100m freestyle",
			Value:  "1:02.5",
		})

		require.NoError(t, err)
		require.Len(t, class.Results, 1)
		assert.Equal(t, studentID, class.Results[0].UserID)
	})

	t.Run("rejects users missing from the roster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClassRepo := repomocks.NewMockClassRepository(ctrl)
		mockClassRepo.EXPECT().
			AddResult(gomock.Any(), orgID, classID, gomock.Any()).
			Return(apperrors.ErrNotClassMember)

		service := NewClassService(mockClassRepo, repomocks.NewMockMembershipRepository(ctrl))

		class, err := service.RecordResult(context.Background(), orgID, classID, coachID, &models.RecordResultRequest{
			UserID: studentID.Hex(),
			Label:  "100m freestyle",
			Value:  "1:02.5",
		})

		assert.Nil(t, class)
		assert.Equal(t, apperrors.ErrNotClassMember, err)
	})

	t.Run("rejects malformed user IDs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewClassService(repomocks.NewMockClassRepository(ctrl), repomocks.NewMockMembershipRepository(ctrl))

		class, err := service.RecordResult(context.Background(), orgID, classID, coachID, &models.RecordResultRequest{
			UserID: "not-an-object-id",
			Label:  "100m freestyle",
			Value:  "1:02.5",
		})

		assert.Nil(t, class)
		assert.Equal(t, apperrors.ErrNotClassMember, err)
	})
}

func TestClassService_RemoveRosterEntry(t *testing.T) {
	t.Run("removes a roster entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orgID := primitive.NewObjectID()
		classID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		mockClassRepo := repomocks.NewMockClassRepository(ctrl)
		mockClassRepo.EXPECT().
			RemoveRosterEntry(gomock.Any(), orgID, classID, userID).
			Return(nil)

		service := NewClassService(mockClassRepo, repomocks.NewMockMembershipRepository(ctrl))

		assert.NoError(t, service.RemoveRosterEntry(context.Background(), orgID, classID, userID))
	})
}

package rbac_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/rbac"
	"clubhub/internal/rbac/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestResolver(t *testing.T) (*rbac.Resolver, *mocks.MockDirectory) {
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockDirectory(ctrl)
	logger := logrus.New()
	logger.SetOutput(testWriter{})
	return rbac.NewResolver(dir, logger, nil, 16, 50*time.Millisecond), dir
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestResolverCurrentOrg(t *testing.T) {
	userID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	t.Run("returns the resolved org", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(&rbac.OrgContext{OrgID: orgID, OrgName: "Northside FC", Role: rbac.RoleAdmin}, nil)

		org := resolver.CurrentOrg(context.Background(), userID)
		assert.NotNil(t, org)
		assert.Equal(t, orgID, org.OrgID)
		assert.Equal(t, rbac.RoleAdmin, org.Role)
	})

	t.Run("nil when the user has no org", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(nil, apperrors.ErrNotOrgMember)

		assert.Nil(t, resolver.CurrentOrg(context.Background(), userID))

		_, outcome := resolver.ResolveCurrentOrg(context.Background(), userID)
		assert.Equal(t, rbac.OutcomeNotFound, outcome)
	})

	t.Run("backend failure folds to nil but keeps the error outcome", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(nil, errors.New("connection reset")).
			Times(2)

		assert.Nil(t, resolver.CurrentOrg(context.Background(), userID))

		_, outcome := resolver.ResolveCurrentOrg(context.Background(), userID)
		assert.Equal(t, rbac.OutcomeError, outcome)
	})
}

func TestResolverRoleInOrg(t *testing.T) {
	userID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	t.Run("resolves and caches the role", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.RoleCoach, nil).
			Times(1)

		for i := 0; i < 3; i++ {
			role, ok := resolver.RoleInOrg(context.Background(), userID, orgID)
			assert.True(t, ok)
			assert.Equal(t, rbac.RoleCoach, role)
		}
	})

	t.Run("not a member", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.Role(""), apperrors.ErrNotOrgMember)

		_, ok := resolver.RoleInOrg(context.Background(), userID, orgID)
		assert.False(t, ok)
	})

	t.Run("negative results are not cached", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		gomock.InOrder(
			dir.EXPECT().
				RoleForUserInOrg(gomock.Any(), userID, orgID).
				Return(rbac.Role(""), apperrors.ErrNotOrgMember),
			dir.EXPECT().
				RoleForUserInOrg(gomock.Any(), userID, orgID).
				Return(rbac.RoleViewer, nil),
		)

		_, ok := resolver.RoleInOrg(context.Background(), userID, orgID)
		assert.False(t, ok)

		role, ok := resolver.RoleInOrg(context.Background(), userID, orgID)
		assert.True(t, ok)
		assert.Equal(t, rbac.RoleViewer, role)
	})

	t.Run("backend failure denies without caching", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.Role(""), errors.New("timeout"))

		role, outcome := resolver.ResolveRole(context.Background(), userID, orgID)
		assert.Equal(t, rbac.OutcomeError, outcome)
		assert.Empty(t, role)
	})

	t.Run("invalidate forces a fresh lookup", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		gomock.InOrder(
			dir.EXPECT().
				RoleForUserInOrg(gomock.Any(), userID, orgID).
				Return(rbac.RoleAdmin, nil),
			dir.EXPECT().
				RoleForUserInOrg(gomock.Any(), userID, orgID).
				Return(rbac.RoleViewer, nil),
		)

		role, _ := resolver.RoleInOrg(context.Background(), userID, orgID)
		assert.Equal(t, rbac.RoleAdmin, role)

		resolver.Invalidate(userID, orgID)

		role, _ = resolver.RoleInOrg(context.Background(), userID, orgID)
		assert.Equal(t, rbac.RoleViewer, role)
	})
}

func TestResolverPredicates(t *testing.T) {
	userID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	cases := []struct {
		name    string
		role    rbac.Role
		owner   bool
		admin   bool
		content bool
	}{
		{"owner", rbac.RoleOwner, true, true, true},
		{"admin", rbac.RoleAdmin, false, true, true},
		{"coach", rbac.RoleCoach, false, false, true},
		{"viewer", rbac.RoleViewer, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver, dir := newTestResolver(t)
			dir.EXPECT().
				RoleForUserInOrg(gomock.Any(), userID, orgID).
				Return(tc.role, nil).
				AnyTimes()

			assert.Equal(t, tc.owner, resolver.IsOwner(context.Background(), userID, orgID))
			assert.Equal(t, tc.admin, resolver.IsAdminOrOwner(context.Background(), userID, orgID))
			assert.Equal(t, tc.content, resolver.CanManageContent(context.Background(), userID, orgID))
		})
	}

	t.Run("non-member fails every predicate", func(t *testing.T) {
		resolver, dir := newTestResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.Role(""), apperrors.ErrNotOrgMember).
			AnyTimes()

		assert.False(t, resolver.IsOwner(context.Background(), userID, orgID))
		assert.False(t, resolver.IsAdminOrOwner(context.Background(), userID, orgID))
		assert.False(t, resolver.CanManageContent(context.Background(), userID, orgID))
	})
}

func TestClassResolver(t *testing.T) {
	userID := primitive.NewObjectID()
	classID := primitive.NewObjectID()

	newClassResolver := func(t *testing.T) (*rbac.ClassResolver, *mocks.MockClassDirectory) {
		ctrl := gomock.NewController(t)
		dir := mocks.NewMockClassDirectory(ctrl)
		logger := logrus.New()
		logger.SetOutput(testWriter{})
		return rbac.NewClassResolver(dir, logger, nil), dir
	}

	t.Run("resolves roster role", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRoleTeacher, nil)

		role, ok := resolver.RoleInClass(context.Background(), userID, classID)
		assert.True(t, ok)
		assert.Equal(t, rbac.ClassRoleTeacher, role)
	})

	t.Run("not enrolled", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRole(""), apperrors.ErrNotClassMember)

		_, ok := resolver.RoleInClass(context.Background(), userID, classID)
		assert.False(t, ok)
	})

	t.Run("backend failure denies", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRole(""), errors.New("timeout"))

		role, outcome := resolver.ResolveRole(context.Background(), userID, classID)
		assert.Equal(t, rbac.OutcomeError, outcome)
		assert.Empty(t, role)
	})
}

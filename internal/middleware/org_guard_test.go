package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/rbac"
	"clubhub/internal/rbac/mocks"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newGuardResolver(t *testing.T) (*rbac.Resolver, *mocks.MockDirectory) {
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockDirectory(ctrl)
	logger := logrus.New()
	logger.SetOutput(discardWriter{})
	return rbac.NewResolver(dir, logger, nil, 16, time.Second), dir
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func runGuard(c *gin.Context, guard gin.HandlerFunc) bool {
	var handlerCalled bool
	guard(c)
	if !c.IsAborted() {
		handlerCalled = true
		c.Status(http.StatusOK)
	}
	return handlerCalled
}

func TestRequireOrgRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	newContext := func(userID string) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/content", nil)
		if userID != "" {
			c.Set(UserIDKey, userID)
		}
		return c, w
	}

	t.Run("allows member with sufficient role", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(&rbac.OrgContext{OrgID: orgID, OrgName: "Northside FC", Role: rbac.RoleCoach}, nil)

		guard := RequireOrgRole(resolver, nil, GuardConfig{Permission: rbac.PermCreateContent})

		c, w := newContext(userID.Hex())
		called := runGuard(c, guard)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)

		gotOrgID, exists := GetOrgID(c)
		assert.True(t, exists)
		assert.Equal(t, orgID, gotOrgID)
		assert.Equal(t, "Northside FC", GetOrgName(c))
		assert.Equal(t, rbac.RoleCoach, GetOrgRole(c))
	})

	t.Run("rejects unauthenticated request with 401", func(t *testing.T) {
		resolver, _ := newGuardResolver(t)
		guard := RequireOrgRole(resolver, nil, GuardConfig{Permission: rbac.PermViewContent})

		c, w := newContext("")
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user with no organization gets 401, not 403", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(nil, apperrors.ErrNotOrgMember)

		guard := RequireOrgRole(resolver, nil, GuardConfig{Permission: rbac.PermViewContent})

		c, w := newContext(userID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("insufficient role gets 403 naming accepted roles", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(&rbac.OrgContext{OrgID: orgID, OrgName: "Northside FC", Role: rbac.RoleViewer}, nil)

		guard := RequireOrgRole(resolver, nil, GuardConfig{Permission: rbac.PermManageMembers})

		c, w := newContext(userID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "owner")
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("custom message overrides the default 403 body", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(&rbac.OrgContext{OrgID: orgID, Role: rbac.RoleViewer}, nil)

		guard := RequireOrgRole(resolver, nil, GuardConfig{
			Permission: rbac.PermManageMembers,
			Message:    "ask an admin to do this",
		})

		c, w := newContext(userID.Hex())
		runGuard(c, guard)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ask an admin to do this")
	})

	t.Run("empty config denies even the owner", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(&rbac.OrgContext{OrgID: orgID, Role: rbac.RoleOwner}, nil)

		guard := RequireOrgRole(resolver, nil, GuardConfig{})

		c, w := newContext(userID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("resolution failure denies instead of allowing", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			CurrentOrgForUser(gomock.Any(), userID).
			Return(nil, errors.New("connection reset"))

		guard := RequireOrgRole(resolver, nil, GuardConfig{Permission: rbac.PermViewContent})

		c, w := newContext(userID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("min role accepts outranking roles only", func(t *testing.T) {
		cases := []struct {
			role    rbac.Role
			allowed bool
		}{
			{rbac.RoleOwner, true},
			{rbac.RoleAdmin, true},
			{rbac.RoleCoach, false},
			{rbac.RoleViewer, false},
		}

		for _, tc := range cases {
			resolver, dir := newGuardResolver(t)
			dir.EXPECT().
				CurrentOrgForUser(gomock.Any(), userID).
				Return(&rbac.OrgContext{OrgID: orgID, Role: tc.role}, nil)

			guard := RequireOrgRole(resolver, nil, GuardConfig{MinRole: rbac.RoleAdmin})

			c, _ := newContext(userID.Hex())
			called := runGuard(c, guard)

			assert.Equal(t, tc.allowed, called, "role %q", tc.role)
		}
	})
}

func TestRequireOrgRole_ExplicitOrg(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := primitive.NewObjectID()
	orgID := primitive.NewObjectID()

	newContext := func(orgParam string) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/orgs/"+orgParam, nil)
		c.Params = gin.Params{{Key: "orgId", Value: orgParam}}
		c.Set(UserIDKey, userID.Hex())
		return c, w
	}

	cfg := GuardConfig{Permission: rbac.PermManageMembers, OrgParam: "orgId"}

	t.Run("allows member of the named organization", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.RoleAdmin, nil)

		guard := RequireOrgRole(resolver, nil, cfg)

		c, w := newContext(orgID.Hex())
		called := runGuard(c, guard)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)

		gotOrgID, _ := GetOrgID(c)
		assert.Equal(t, orgID, gotOrgID)
	})

	t.Run("non-member of the named organization gets 401", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.Role(""), apperrors.ErrNotOrgMember)

		guard := RequireOrgRole(resolver, nil, cfg)

		c, w := newContext(orgID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed organization id gets 400", func(t *testing.T) {
		resolver, _ := newGuardResolver(t)
		guard := RequireOrgRole(resolver, nil, cfg)

		c, w := newContext("not-an-id")
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lookup failure in the named organization denies with 401", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.Role(""), errors.New("timeout"))

		guard := RequireOrgRole(resolver, nil, cfg)

		c, w := newContext(orgID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("member with insufficient role still gets 403", func(t *testing.T) {
		resolver, dir := newGuardResolver(t)
		dir.EXPECT().
			RoleForUserInOrg(gomock.Any(), userID, orgID).
			Return(rbac.RoleViewer, nil)

		guard := RequireOrgRole(resolver, nil, cfg)

		c, w := newContext(orgID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

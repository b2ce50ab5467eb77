package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/rbac"
	"clubhub/internal/rbac/mocks"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestRequireClassRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := primitive.NewObjectID()
	classID := primitive.NewObjectID()

	newClassResolver := func(t *testing.T) (*rbac.ClassResolver, *mocks.MockClassDirectory) {
		ctrl := gomock.NewController(t)
		dir := mocks.NewMockClassDirectory(ctrl)
		logger := logrus.New()
		logger.SetOutput(discardWriter{})
		return rbac.NewClassResolver(dir, logger, nil), dir
	}

	newContext := func(classParam string) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/classes/"+classParam+"/roster", nil)
		c.Params = gin.Params{{Key: "classId", Value: classParam}}
		c.Set(UserIDKey, userID.Hex())
		return c, w
	}

	t.Run("allows teacher to manage roster", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRoleTeacher, nil)

		guard := RequireClassRole(resolver, nil, rbac.ClassPermManageRoster)

		c, w := newContext(classID.Hex())
		called := runGuard(c, guard)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, rbac.ClassRoleTeacher, GetClassRole(c))

		gotClassID, exists := GetClassID(c)
		assert.True(t, exists)
		assert.Equal(t, classID, gotClassID)
	})

	t.Run("student cannot manage roster", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRoleStudent, nil)

		guard := RequireClassRole(resolver, nil, rbac.ClassPermManageRoster)

		c, w := newContext(classID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("parent can view roster", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRoleParent, nil)

		guard := RequireClassRole(resolver, nil, rbac.ClassPermViewRoster)

		c, _ := newContext(classID.Hex())
		called := runGuard(c, guard)

		assert.True(t, called)
	})

	t.Run("not enrolled gets 403", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRole(""), apperrors.ErrNotClassMember)

		guard := RequireClassRole(resolver, nil, rbac.ClassPermViewRoster)

		c, w := newContext(classID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("roster lookup failure denies", func(t *testing.T) {
		resolver, dir := newClassResolver(t)
		dir.EXPECT().
			RoleForUserInClass(gomock.Any(), userID, classID).
			Return(rbac.ClassRole(""), errors.New("timeout"))

		guard := RequireClassRole(resolver, nil, rbac.ClassPermViewRoster)

		c, w := newContext(classID.Hex())
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("malformed class id gets 400", func(t *testing.T) {
		resolver, _ := newClassResolver(t)
		guard := RequireClassRole(resolver, nil, rbac.ClassPermViewRoster)

		c, w := newContext("nope")
		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated gets 401", func(t *testing.T) {
		resolver, _ := newClassResolver(t)
		guard := RequireClassRole(resolver, nil, rbac.ClassPermViewRoster)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/classes/"+classID.Hex()+"/roster", nil)
		c.Params = gin.Params{{Key: "classId", Value: classID.Hex()}}

		called := runGuard(c, guard)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

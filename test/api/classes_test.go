//go:build api

package api

import (
	"net/http"
	"testing"

	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/pkg/response"
	"clubhub/test/api/testserver"
	"clubhub/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassLifecycle(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)
	orgHelper := testserver.NewOrgHelper(testServer)
	classHelper := testserver.NewClassHelper(testServer)

	_, ownerToken := authHelper.CreateAuthenticatedUser(t, "Owner", "owner@example.com", "password123")
	viewerData, viewerToken := authHelper.CreateAuthenticatedUser(t, "Viewer", "viewer@example.com", "password123")

	orgData := orgHelper.CreateOrg(t, ownerToken, "Class Club")
	orgID := testserver.GetIDFromResponse(t, orgData)
	orgHelper.SeedMembership(t, testserver.GetObjectIDFromResponse(t, orgData),
		testserver.GetObjectIDFromResponse(t, viewerData), "viewer")

	classData := classHelper.CreateClass(t, ownerToken, orgID, "U12 Tuesday group")
	classID := testserver.GetIDFromResponse(t, classData)

	t.Run("members can read the class", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/orgs/"+orgID+"/classes/"+classID, viewerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "U12 Tuesday group", data["name"])
	})

	t.Run("viewers cannot create classes", func(t *testing.T) {
		req := models.CreateClassRequest{Name: "Rogue class"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost,
			"/api/v1/orgs/"+orgID+"/classes", viewerToken, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rename and delete are for member managers", func(t *testing.T) {
		req := models.UpdateClassRequest{Name: "U12 Wednesday group"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut,
			"/api/v1/orgs/"+orgID+"/classes/"+classID, viewerToken, req)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut,
			"/api/v1/orgs/"+orgID+"/classes/"+classID, ownerToken, req)
		assert.Equal(t, http.StatusOK, w.Code, "rename should succeed, got: %s", w.Body.String())
	})
}

func TestClassRoster(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)
	orgHelper := testserver.NewOrgHelper(testServer)
	classHelper := testserver.NewClassHelper(testServer)

	_, ownerToken := authHelper.CreateAuthenticatedUser(t, "Owner", "owner@example.com", "password123")
	coachData, coachToken := authHelper.CreateAuthenticatedUser(t, "Coach", "coach@example.com", "password123")
	studentData, studentToken := authHelper.CreateAuthenticatedUser(t, "Student", "student@example.com", "password123")

	orgData := orgHelper.CreateOrg(t, ownerToken, "Roster Club")
	orgID := testserver.GetIDFromResponse(t, orgData)
	orgOID := testserver.GetObjectIDFromResponse(t, orgData)
	coachID := testserver.GetObjectIDFromResponse(t, coachData)
	studentID := testserver.GetObjectIDFromResponse(t, studentData)
	orgHelper.SeedMembership(t, orgOID, coachID, "coach")
	orgHelper.SeedMembership(t, orgOID, studentID, "viewer")

	classData := classHelper.CreateClass(t, ownerToken, orgID, "Roster class")
	classID := testserver.GetIDFromResponse(t, classData)

	rosterPath := "/api/v1/orgs/" + orgID + "/classes/" + classID + "/roster"

	t.Run("org managers can enroll without being on the roster", func(t *testing.T) {
		req := models.AddRosterEntryRequest{UserID: coachID.Hex(), Role: rbac.ClassRoleTeacher}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, rosterPath, ownerToken, req)
		assert.Equal(t, http.StatusOK, w.Code, "owner enroll should succeed, got: %s", w.Body.String())
	})

	t.Run("class teachers can enroll students", func(t *testing.T) {
		req := models.AddRosterEntryRequest{UserID: studentID.Hex(), Role: rbac.ClassRoleStudent}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, rosterPath, coachToken, req)
		assert.Equal(t, http.StatusOK, w.Code, "teacher enroll should succeed, got: %s", w.Body.String())
	})

	t.Run("students cannot manage the roster", func(t *testing.T) {
		req := models.AddRosterEntryRequest{UserID: coachID.Hex(), Role: rbac.ClassRoleStudent}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, rosterPath, studentToken, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enrolling twice conflicts", func(t *testing.T) {
		req := models.AddRosterEntryRequest{UserID: studentID.Hex(), Role: rbac.ClassRoleStudent}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, rosterPath, coachToken, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("class teachers can record results", func(t *testing.T) {
		req := models.RecordResultRequest{UserID: studentID.Hex(), Label: "100m freestyle", Value: "1:02.5"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost,
			"/api/v1/orgs/"+orgID+"/classes/"+classID+"/results", coachToken, req)
		require.Equal(t, http.StatusCreated, w.Code, "record should succeed, got: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		results := resp.Data.(map[string]interface{})["results"].([]interface{})
		require.Len(t, results, 1)
		entry := results[0].(map[string]interface{})
		assert.Equal(t, "100m freestyle", entry["label"])
		assert.Equal(t, "1:02.5", entry["value"])
		assert.Equal(t, coachID.Hex(), entry["recordedBy"])
	})

	t.Run("students cannot record results", func(t *testing.T) {
		req := models.RecordResultRequest{UserID: studentID.Hex(), Label: "100m freestyle", Value: "1:05.0"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost,
			"/api/v1/orgs/"+orgID+"/classes/"+classID+"/results", studentToken, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("results require a roster member", func(t *testing.T) {
		req := models.RecordResultRequest{UserID: orgOID.Hex(), Label: "100m freestyle", Value: "1:05.0"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost,
			"/api/v1/orgs/"+orgID+"/classes/"+classID+"/results", ownerToken, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "got: %s", w.Body.String())
	})

	t.Run("roster entries can be removed", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete,
			rosterPath+"/"+studentID.Hex(), coachToken, nil)
		require.Equal(t, http.StatusOK, w.Code, "remove should succeed, got: %s", w.Body.String())

		// The class now lists a single roster entry
		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/orgs/"+orgID+"/classes/"+classID, ownerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		roster := resp.Data.(map[string]interface{})["roster"].([]interface{})
		assert.Len(t, roster, 1)
	})
}

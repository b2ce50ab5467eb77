//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/pkg/response"
	"clubhub/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the user data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// CreateAuthenticatedUser creates a user and returns the user data and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email, password string) (userData map[string]interface{}, accessToken string) {
	t.Helper()

	userData = ah.RegisterUser(t, name, email, password)
	authData := ah.Login(t, email, password)

	accessToken, ok := authData["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return userData, accessToken
}

// CreateDefaultUser creates a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, accessToken string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "Test User", "test@example.com", "password123")
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// OrgHelper provides organization-related helpers for API tests.
type OrgHelper struct {
	server *TestServer
}

// NewOrgHelper creates a new organization helper.
func NewOrgHelper(server *TestServer) *OrgHelper {
	return &OrgHelper{server: server}
}

// CreateOrg creates a new organization and returns the organization data.
// The caller becomes its owner.
func (oh *OrgHelper) CreateOrg(t *testing.T, token, name string) map[string]interface{} {
	t.Helper()

	// Generate slug from name: lowercase, replace spaces with hyphens
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))

	req := models.CreateOrganizationRequest{
		Name: name,
		Slug: slug,
	}

	w := testutil.MakeAuthRequest(t, oh.server.Router, http.MethodPost, "/api/v1/orgs", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create org should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create org response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedMembership directly inserts a membership into the database (bypasses
// API and invitations) and invalidates any cached role for the user.
func (oh *OrgHelper) SeedMembership(t *testing.T, orgID, userID primitive.ObjectID, role rbac.Role) *models.Membership {
	t.Helper()
	ctx := context.Background()

	membership := &models.Membership{
		OrgID:    orgID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	err := oh.server.MembershipRepo.Create(ctx, membership)
	require.NoError(t, err, "failed to seed membership")

	oh.server.Resolver.Invalidate(userID, orgID)

	return membership
}

// InvitationHelper provides invitation-related helpers for API tests.
type InvitationHelper struct {
	server *TestServer
}

// NewInvitationHelper creates a new invitation helper.
func NewInvitationHelper(server *TestServer) *InvitationHelper {
	return &InvitationHelper{server: server}
}

// CreateInvitation creates an invitation via API and returns the response data.
func (ih *InvitationHelper) CreateInvitation(t *testing.T, token, orgID, email string, role rbac.Role) map[string]interface{} {
	t.Helper()

	req := models.CreateInvitationRequest{
		Email: email,
		Role:  role,
	}

	w := testutil.MakeAuthRequest(t, ih.server.Router, http.MethodPost, "/api/v1/orgs/"+orgID+"/invitations", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create invitation should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create invitation response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedInvitationRaw inserts an invitation directly into MongoDB, skipping
// the repository's Create so all fields stay as given (useful for expired
// invitations).
func (ih *InvitationHelper) SeedInvitationRaw(t *testing.T, invitation *models.Invitation) *models.Invitation {
	t.Helper()
	ctx := context.Background()

	if invitation.ID.IsZero() {
		invitation.ID = primitive.NewObjectID()
	}

	collection := ih.server.MongoDB.Database.Collection("invitations")
	_, err := collection.InsertOne(ctx, invitation)
	require.NoError(t, err, "failed to seed invitation directly")

	return invitation
}

// TokenFor looks up the invitation token directly in the database. The API
// never returns tokens; they travel by email.
func (ih *InvitationHelper) TokenFor(t *testing.T, invitationID string) string {
	t.Helper()
	ctx := context.Background()

	id, err := primitive.ObjectIDFromHex(invitationID)
	require.NoError(t, err, "invitation id should be a valid ObjectID")

	invitation, err := ih.server.InvitationRepo.FindByID(ctx, id)
	require.NoError(t, err, "failed to load invitation")

	return invitation.Token
}

// ContentHelper provides content helpers for API tests.
type ContentHelper struct {
	server *TestServer
}

// NewContentHelper creates a new content helper.
func NewContentHelper(server *TestServer) *ContentHelper {
	return &ContentHelper{server: server}
}

// CreateContent creates a content item and returns the response data.
func (ch *ContentHelper) CreateContent(t *testing.T, token, orgID, title string) map[string]interface{} {
	t.Helper()

	req := models.CreateContentRequest{
		Title: title,
		Body:  "Session plan: warm-up, drills, small-sided game.",
		Tags:  []string{"training"},
	}

	w := testutil.MakeAuthRequest(t, ch.server.Router, http.MethodPost, "/api/v1/orgs/"+orgID+"/content", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create content should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create content response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// ClassHelper provides class helpers for API tests.
type ClassHelper struct {
	server *TestServer
}

// NewClassHelper creates a new class helper.
func NewClassHelper(server *TestServer) *ClassHelper {
	return &ClassHelper{server: server}
}

// CreateClass creates a class and returns the response data.
func (ch *ClassHelper) CreateClass(t *testing.T, token, orgID, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateClassRequest{Name: name}

	w := testutil.MakeAuthRequest(t, ch.server.Router, http.MethodPost, "/api/v1/orgs/"+orgID+"/classes", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create class should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create class response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data. It handles both
// direct id fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}

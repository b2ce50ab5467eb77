// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/internal/repository"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc  func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc   func(ctx context.Context, req *models.LogoutRequest) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc    func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUserFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockOrganizationService is a mock implementation of OrganizationServicer.
type MockOrganizationService struct {
	CreateOrganizationFunc  func(ctx context.Context, userID primitive.ObjectID, req *models.CreateOrganizationRequest) (*models.Organization, error)
	ListMyOrganizationsFunc func(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.OrganizationListResponse, error)
	GetOrganizationFunc     func(ctx context.Context, orgID primitive.ObjectID) (*models.Organization, error)
	UpdateOrganizationFunc  func(ctx context.Context, orgID primitive.ObjectID, req *models.UpdateOrganizationRequest) (*models.Organization, error)
	DeleteOrganizationFunc  func(ctx context.Context, orgID primitive.ObjectID) error
	TransferOwnershipFunc   func(ctx context.Context, orgID, currentOwnerID, newOwnerID primitive.ObjectID) error
	GetStatsFunc            func(ctx context.Context, orgID primitive.ObjectID) (*models.OrganizationStats, error)
}

func (m *MockOrganizationService) CreateOrganization(ctx context.Context, userID primitive.ObjectID, req *models.CreateOrganizationRequest) (*models.Organization, error) {
	if m.CreateOrganizationFunc != nil {
		return m.CreateOrganizationFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockOrganizationService) ListMyOrganizations(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.OrganizationListResponse, error) {
	if m.ListMyOrganizationsFunc != nil {
		return m.ListMyOrganizationsFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockOrganizationService) GetOrganization(ctx context.Context, orgID primitive.ObjectID) (*models.Organization, error) {
	if m.GetOrganizationFunc != nil {
		return m.GetOrganizationFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *MockOrganizationService) UpdateOrganization(ctx context.Context, orgID primitive.ObjectID, req *models.UpdateOrganizationRequest) (*models.Organization, error) {
	if m.UpdateOrganizationFunc != nil {
		return m.UpdateOrganizationFunc(ctx, orgID, req)
	}
	return nil, nil
}

func (m *MockOrganizationService) DeleteOrganization(ctx context.Context, orgID primitive.ObjectID) error {
	if m.DeleteOrganizationFunc != nil {
		return m.DeleteOrganizationFunc(ctx, orgID)
	}
	return nil
}

func (m *MockOrganizationService) TransferOwnership(ctx context.Context, orgID, currentOwnerID, newOwnerID primitive.ObjectID) error {
	if m.TransferOwnershipFunc != nil {
		return m.TransferOwnershipFunc(ctx, orgID, currentOwnerID, newOwnerID)
	}
	return nil
}

func (m *MockOrganizationService) GetStats(ctx context.Context, orgID primitive.ObjectID) (*models.OrganizationStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, orgID)
	}
	return nil, nil
}

// MockMembershipService is a mock implementation of MembershipServicer.
type MockMembershipService struct {
	ListMembersFunc  func(ctx context.Context, orgID primitive.ObjectID, page, limit int) (*models.MembershipListResponse, error)
	GetMemberFunc    func(ctx context.Context, orgID, userID primitive.ObjectID) (*models.Membership, error)
	RemoveMemberFunc func(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID) error
	UpdateRoleFunc   func(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID, newRole rbac.Role) error
	LeaveFunc        func(ctx context.Context, orgID, userID primitive.ObjectID) error
	SetPrimaryFunc   func(ctx context.Context, userID, orgID primitive.ObjectID) error
}

func (m *MockMembershipService) ListMembers(ctx context.Context, orgID primitive.ObjectID, page, limit int) (*models.MembershipListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, orgID, page, limit)
	}
	return nil, nil
}

func (m *MockMembershipService) GetMember(ctx context.Context, orgID, userID primitive.ObjectID) (*models.Membership, error) {
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(ctx, orgID, userID)
	}
	return nil, nil
}

func (m *MockMembershipService) RemoveMember(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, orgID, targetUserID, requestingUserID)
	}
	return nil
}

func (m *MockMembershipService) UpdateRole(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID, newRole rbac.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, orgID, targetUserID, requestingUserID, newRole)
	}
	return nil
}

func (m *MockMembershipService) Leave(ctx context.Context, orgID, userID primitive.ObjectID) error {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, orgID, userID)
	}
	return nil
}

func (m *MockMembershipService) SetPrimary(ctx context.Context, userID, orgID primitive.ObjectID) error {
	if m.SetPrimaryFunc != nil {
		return m.SetPrimaryFunc(ctx, userID, orgID)
	}
	return nil
}

// MockInvitationService is a mock implementation of InvitationServicer.
type MockInvitationService struct {
	CreateInvitationFunc   func(ctx context.Context, orgID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error)
	ListOrgInvitationsFunc func(ctx context.Context, orgID primitive.ObjectID) (*models.InvitationListResponse, error)
	CancelInvitationFunc   func(ctx context.Context, invitationID, orgID primitive.ObjectID) error
	ListMyInvitationsFunc  func(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitationFunc   func(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error)
	DeclineInvitationFunc  func(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error
}

func (m *MockInvitationService) CreateInvitation(ctx context.Context, orgID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error) {
	if m.CreateInvitationFunc != nil {
		return m.CreateInvitationFunc(ctx, orgID, inviterID, req)
	}
	return nil, nil
}

func (m *MockInvitationService) ListOrgInvitations(ctx context.Context, orgID primitive.ObjectID) (*models.InvitationListResponse, error) {
	if m.ListOrgInvitationsFunc != nil {
		return m.ListOrgInvitationsFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *MockInvitationService) CancelInvitation(ctx context.Context, invitationID, orgID primitive.ObjectID) error {
	if m.CancelInvitationFunc != nil {
		return m.CancelInvitationFunc(ctx, invitationID, orgID)
	}
	return nil
}

func (m *MockInvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	if m.ListMyInvitationsFunc != nil {
		return m.ListMyInvitationsFunc(ctx, userEmail)
	}
	return nil, nil
}

func (m *MockInvitationService) AcceptInvitation(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error) {
	if m.AcceptInvitationFunc != nil {
		return m.AcceptInvitationFunc(ctx, token, userID, userEmail)
	}
	return nil, nil
}

func (m *MockInvitationService) DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error {
	if m.DeclineInvitationFunc != nil {
		return m.DeclineInvitationFunc(ctx, invitationID, userEmail)
	}
	return nil
}

// MockContentService is a mock implementation of ContentServicer.
type MockContentService struct {
	CreateContentFunc  func(ctx context.Context, orgID, authorID primitive.ObjectID, req *models.CreateContentRequest) (*models.CreateContentResponse, error)
	ListContentFunc    func(ctx context.Context, orgID primitive.ObjectID, filter repository.ContentFilter, page, limit int, includeDrafts bool) (*models.ContentListResponse, error)
	GetContentFunc     func(ctx context.Context, orgID, contentID primitive.ObjectID, includeDrafts bool) (*models.Content, error)
	UpdateContentFunc  func(ctx context.Context, orgID, contentID primitive.ObjectID, req *models.UpdateContentRequest) (*models.Content, error)
	PublishContentFunc func(ctx context.Context, orgID, contentID primitive.ObjectID) (*models.Content, error)
	DeleteContentFunc  func(ctx context.Context, orgID, contentID primitive.ObjectID) error
}

func (m *MockContentService) CreateContent(ctx context.Context, orgID, authorID primitive.ObjectID, req *models.CreateContentRequest) (*models.CreateContentResponse, error) {
	if m.CreateContentFunc != nil {
		return m.CreateContentFunc(ctx, orgID, authorID, req)
	}
	return nil, nil
}

func (m *MockContentService) ListContent(ctx context.Context, orgID primitive.ObjectID, filter repository.ContentFilter, page, limit int, includeDrafts bool) (*models.ContentListResponse, error) {
	if m.ListContentFunc != nil {
		return m.ListContentFunc(ctx, orgID, filter, page, limit, includeDrafts)
	}
	return nil, nil
}

func (m *MockContentService) GetContent(ctx context.Context, orgID, contentID primitive.ObjectID, includeDrafts bool) (*models.Content, error) {
	if m.GetContentFunc != nil {
		return m.GetContentFunc(ctx, orgID, contentID, includeDrafts)
	}
	return nil, nil
}

func (m *MockContentService) UpdateContent(ctx context.Context, orgID, contentID primitive.ObjectID, req *models.UpdateContentRequest) (*models.Content, error) {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(ctx, orgID, contentID, req)
	}
	return nil, nil
}

func (m *MockContentService) PublishContent(ctx context.Context, orgID, contentID primitive.ObjectID) (*models.Content, error) {
	if m.PublishContentFunc != nil {
		return m.PublishContentFunc(ctx, orgID, contentID)
	}
	return nil, nil
}

func (m *MockContentService) DeleteContent(ctx context.Context, orgID, contentID primitive.ObjectID) error {
	if m.DeleteContentFunc != nil {
		return m.DeleteContentFunc(ctx, orgID, contentID)
	}
	return nil
}

// MockClassService is a mock implementation of ClassServicer.
type MockClassService struct {
	CreateClassFunc       func(ctx context.Context, orgID primitive.ObjectID, req *models.CreateClassRequest) (*models.Class, error)
	ListClassesFunc       func(ctx context.Context, orgID primitive.ObjectID) (*models.ClassListResponse, error)
	GetClassFunc          func(ctx context.Context, orgID, classID primitive.ObjectID) (*models.Class, error)
	RenameClassFunc       func(ctx context.Context, orgID, classID primitive.ObjectID, req *models.UpdateClassRequest) (*models.Class, error)
	DeleteClassFunc       func(ctx context.Context, orgID, classID primitive.ObjectID) error
	AddRosterEntryFunc    func(ctx context.Context, orgID, classID primitive.ObjectID, req *models.AddRosterEntryRequest) (*models.Class, error)
	RemoveRosterEntryFunc func(ctx context.Context, orgID, classID, userID primitive.ObjectID) error
	RecordResultFunc      func(ctx context.Context, orgID, classID, recordedBy primitive.ObjectID, req *models.RecordResultRequest) (*models.Class, error)
}

func (m *MockClassService) CreateClass(ctx context.Context, orgID primitive.ObjectID, req *models.CreateClassRequest) (*models.Class, error) {
	if m.CreateClassFunc != nil {
		return m.CreateClassFunc(ctx, orgID, req)
	}
	return nil, nil
}

func (m *MockClassService) ListClasses(ctx context.Context, orgID primitive.ObjectID) (*models.ClassListResponse, error) {
	if m.ListClassesFunc != nil {
		return m.ListClassesFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *MockClassService) GetClass(ctx context.Context, orgID, classID primitive.ObjectID) (*models.Class, error) {
	if m.GetClassFunc != nil {
		return m.GetClassFunc(ctx, orgID, classID)
	}
	return nil, nil
}

func (m *MockClassService) RenameClass(ctx context.Context, orgID, classID primitive.ObjectID, req *models.UpdateClassRequest) (*models.Class, error) {
	if m.RenameClassFunc != nil {
		return m.RenameClassFunc(ctx, orgID, classID, req)
	}
	return nil, nil
}

func (m *MockClassService) DeleteClass(ctx context.Context, orgID, classID primitive.ObjectID) error {
	if m.DeleteClassFunc != nil {
		return m.DeleteClassFunc(ctx, orgID, classID)
	}
	return nil
}

func (m *MockClassService) AddRosterEntry(ctx context.Context, orgID, classID primitive.ObjectID, req *models.AddRosterEntryRequest) (*models.Class, error) {
	if m.AddRosterEntryFunc != nil {
		return m.AddRosterEntryFunc(ctx, orgID, classID, req)
	}
	return nil, nil
}

func (m *MockClassService) RemoveRosterEntry(ctx context.Context, orgID, classID, userID primitive.ObjectID) error {
	if m.RemoveRosterEntryFunc != nil {
		return m.RemoveRosterEntryFunc(ctx, orgID, classID, userID)
	}
	return nil
}

func (m *MockClassService) RecordResult(ctx context.Context, orgID, classID, recordedBy primitive.ObjectID, req *models.RecordResultRequest) (*models.Class, error) {
	if m.RecordResultFunc != nil {
		return m.RecordResultFunc(ctx, orgID, classID, recordedBy, req)
	}
	return nil, nil
}

// Package service contains business logic for the application.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/internal/repository"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// OrganizationServicer defines the interface for organization operations.
type OrganizationServicer interface {
	CreateOrganization(ctx context.Context, userID primitive.ObjectID, req *models.CreateOrganizationRequest) (*models.Organization, error)
	ListMyOrganizations(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.OrganizationListResponse, error)
	GetOrganization(ctx context.Context, orgID primitive.ObjectID) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, orgID primitive.ObjectID, req *models.UpdateOrganizationRequest) (*models.Organization, error)
	DeleteOrganization(ctx context.Context, orgID primitive.ObjectID) error
	TransferOwnership(ctx context.Context, orgID, currentOwnerID, newOwnerID primitive.ObjectID) error
	GetStats(ctx context.Context, orgID primitive.ObjectID) (*models.OrganizationStats, error)
}

// MembershipServicer defines the interface for organization member operations.
type MembershipServicer interface {
	ListMembers(ctx context.Context, orgID primitive.ObjectID, page, limit int) (*models.MembershipListResponse, error)
	GetMember(ctx context.Context, orgID, userID primitive.ObjectID) (*models.Membership, error)
	RemoveMember(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID) error
	UpdateRole(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID, newRole rbac.Role) error
	Leave(ctx context.Context, orgID, userID primitive.ObjectID) error
	SetPrimary(ctx context.Context, userID, orgID primitive.ObjectID) error
}

// InvitationServicer defines the interface for invitation operations.
type InvitationServicer interface {
	CreateInvitation(ctx context.Context, orgID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error)
	ListOrgInvitations(ctx context.Context, orgID primitive.ObjectID) (*models.InvitationListResponse, error)
	CancelInvitation(ctx context.Context, invitationID, orgID primitive.ObjectID) error
	ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitation(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error)
	DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error
}

// ContentServicer defines the interface for content operations.
type ContentServicer interface {
	CreateContent(ctx context.Context, orgID, authorID primitive.ObjectID, req *models.CreateContentRequest) (*models.CreateContentResponse, error)
	ListContent(ctx context.Context, orgID primitive.ObjectID, filter repository.ContentFilter, page, limit int, includeDrafts bool) (*models.ContentListResponse, error)
	GetContent(ctx context.Context, orgID, contentID primitive.ObjectID, includeDrafts bool) (*models.Content, error)
	UpdateContent(ctx context.Context, orgID, contentID primitive.ObjectID, req *models.UpdateContentRequest) (*models.Content, error)
	PublishContent(ctx context.Context, orgID, contentID primitive.ObjectID) (*models.Content, error)
	DeleteContent(ctx context.Context, orgID, contentID primitive.ObjectID) error
}

// ClassServicer defines the interface for class operations.
type ClassServicer interface {
	CreateClass(ctx context.Context, orgID primitive.ObjectID, req *models.CreateClassRequest) (*models.Class, error)
	ListClasses(ctx context.Context, orgID primitive.ObjectID) (*models.ClassListResponse, error)
	GetClass(ctx context.Context, orgID, classID primitive.ObjectID) (*models.Class, error)
	RenameClass(ctx context.Context, orgID, classID primitive.ObjectID, req *models.UpdateClassRequest) (*models.Class, error)
	DeleteClass(ctx context.Context, orgID, classID primitive.ObjectID) error
	AddRosterEntry(ctx context.Context, orgID, classID primitive.ObjectID, req *models.AddRosterEntryRequest) (*models.Class, error)
	RemoveRosterEntry(ctx context.Context, orgID, classID, userID primitive.ObjectID) error
	RecordResult(ctx context.Context, orgID, classID, recordedBy primitive.ObjectID, req *models.RecordResultRequest) (*models.Class, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer         = (*AuthService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ OrganizationServicer = (*OrganizationService)(nil)
	_ MembershipServicer   = (*MembershipService)(nil)
	_ InvitationServicer   = (*InvitationService)(nil)
	_ ContentServicer      = (*ContentService)(nil)
	_ ClassServicer        = (*ClassService)(nil)
)

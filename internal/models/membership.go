package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubhub/internal/rbac"
)

// Membership represents a user's role in one organization. A user has at
// most one membership per organization; the membership marked primary
// decides which organization is "current" for requests that do not name one.
type Membership struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	OrgID     primitive.ObjectID `json:"orgId" bson:"orgId" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role      rbac.Role          `json:"role" bson:"role" example:"coach"`
	Primary   bool               `json:"primary" bson:"primary" example:"true"`
	InvitedBy primitive.ObjectID `json:"invitedBy,omitempty" bson:"invitedBy,omitempty" example:"507f1f77bcf86cd799439014"`
	JoinedAt  time.Time          `json:"joinedAt" bson:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// MembershipWithUser is a membership with expanded user information.
type MembershipWithUser struct {
	ID       primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	OrgID    primitive.ObjectID `json:"orgId" example:"507f1f77bcf86cd799439012"`
	UserID   primitive.ObjectID `json:"userId" example:"507f1f77bcf86cd799439013"`
	User     *UserSummary       `json:"user,omitempty"`
	Role     rbac.Role          `json:"role" example:"coach"`
	JoinedAt time.Time          `json:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// UpdateRoleRequest is the payload for updating a member's role.
type UpdateRoleRequest struct {
	Role rbac.Role `json:"role" binding:"required,orgrole" example:"admin"`
}

// MembershipListResponse is the response for listing organization members.
type MembershipListResponse struct {
	Items      []MembershipWithUser `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

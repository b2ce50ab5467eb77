package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubhub/internal/rbac"
)

// Invitation represents an invitation to join an organization. The token is
// an opaque UUID delivered by email; possession of the token plus a matching
// email accepts the invitation.
type Invitation struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	OrgID     primitive.ObjectID `json:"orgId" bson:"orgId" example:"507f1f77bcf86cd799439012"`
	Email     string             `json:"email" bson:"email" example:"newcoach@example.com"`
	Role      rbac.Role          `json:"role" bson:"role" example:"coach"`
	Token     string             `json:"-" bson:"token"`
	InvitedBy primitive.ObjectID `json:"invitedBy" bson:"invitedBy" example:"507f1f77bcf86cd799439013"`
	ExpiresAt time.Time          `json:"expiresAt" bson:"expiresAt" example:"2024-01-22T09:30:00Z"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// InvitationWithDetails is an invitation with expanded org and inviter info.
type InvitationWithDetails struct {
	ID           primitive.ObjectID   `json:"id" example:"507f1f77bcf86cd799439011"`
	Organization *OrganizationSummary `json:"organization,omitempty"`
	InvitedBy    *UserSummary         `json:"invitedBy,omitempty"`
	Role         rbac.Role            `json:"role" example:"coach"`
	ExpiresAt    time.Time            `json:"expiresAt" example:"2024-01-22T09:30:00Z"`
	CreatedAt    time.Time            `json:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateInvitationRequest is the payload for creating an invitation. Owner
// cannot be granted by invitation.
type CreateInvitationRequest struct {
	Email string    `json:"email" binding:"required,email" example:"newcoach@example.com"`
	Role  rbac.Role `json:"role" binding:"required,oneof=admin coach viewer" example:"coach"`
}

// AcceptInvitationRequest is the payload for accepting an invitation.
type AcceptInvitationRequest struct {
	Token string `json:"token" binding:"required,uuid4" example:"8f14e45f-ea38-4cde-9c6c-1f4a7b2d9e01"`
}

// AcceptInvitationResponse is the response for accepting an invitation.
type AcceptInvitationResponse struct {
	Message string `json:"message" example:"invitation accepted"`
	OrgID   string `json:"orgId" example:"507f1f77bcf86cd799439012"`
}

// InvitationListResponse is the response for listing an organization's
// pending invitations.
type InvitationListResponse struct {
	Items []Invitation `json:"items"`
}

// MyInvitationListResponse is the response for listing the caller's pending
// invitations.
type MyInvitationListResponse struct {
	Items []InvitationWithDetails `json:"items"`
}

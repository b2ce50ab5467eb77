package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization represents a club or school tenant. All content, memberships,
// invitations and classes belong to exactly one organization.
type Organization struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Northside FC"`
	Slug        string             `json:"slug" bson:"slug" example:"northside-fc"`
	Description string             `json:"description" bson:"description" example:"Youth football club"`
	LogoURL     string             `json:"logoUrl" bson:"logoUrl" example:"https://example.com/logo.png"`
	OwnerID     primitive.ObjectID `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439012"`
	Seats       int                `json:"seats" bson:"seats" example:"50"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// OrganizationSummary is a minimal organization representation for embedding.
type OrganizationSummary struct {
	ID   primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	Name string             `json:"name" example:"Northside FC"`
	Slug string             `json:"slug" example:"northside-fc"`
}

// CreateOrganizationRequest is the payload for creating an organization.
type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Northside FC"`
	Slug        string `json:"slug" binding:"required,min=2,max=50,slug" example:"northside-fc"`
	Description string `json:"description" binding:"omitempty,max=500" example:"Youth football club"`
	LogoURL     string `json:"logoUrl" binding:"omitempty,url" example:"https://example.com/logo.png"`
}

// UpdateOrganizationRequest is the payload for updating an organization.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100" example:"Northside Football Club"`
	Slug        *string `json:"slug" binding:"omitempty,min=2,max=50,slug" example:"northside-football"`
	Description *string `json:"description" binding:"omitempty,max=500" example:"Updated description"`
	LogoURL     *string `json:"logoUrl" binding:"omitempty" example:"https://example.com/new-logo.png"`
}

// TransferOwnershipRequest is the payload for transferring organization
// ownership.
type TransferOwnershipRequest struct {
	NewOwnerID string `json:"newOwnerId" binding:"required" example:"507f1f77bcf86cd799439013"`
}

// OrganizationListResponse is the response for listing organizations.
type OrganizationListResponse struct {
	Items      []Organization `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// OrganizationStats is an aggregated view of one organization's activity.
type OrganizationStats struct {
	MemberCount        int            `json:"memberCount" example:"24"`
	MembersByRole      map[string]int `json:"membersByRole"`
	PendingInvitations int            `json:"pendingInvitations" example:"3"`
	ContentCount       int            `json:"contentCount" example:"120"`
	PublishedContent   int            `json:"publishedContent" example:"95"`
	ClassCount         int            `json:"classCount" example:"6"`
	SeatsUsed          int            `json:"seatsUsed" example:"24"`
	SeatsTotal         int            `json:"seatsTotal" example:"50"`
}

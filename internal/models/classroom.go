package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubhub/internal/rbac"
)

// Class represents a class or training group inside an organization, with
// its roster embedded. Rosters are small (tens of entries), so embedding
// keeps role lookups to a single document read.
type Class struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	OrgID     primitive.ObjectID `json:"orgId" bson:"orgId" example:"507f1f77bcf86cd799439012"`
	Name      string             `json:"name" bson:"name" example:"U12 Tuesday group"`
	Roster    []RosterEntry      `json:"roster" bson:"roster"`
	Results   []ResultEntry      `json:"results" bson:"results"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RosterEntry is one user's place on a class roster.
type RosterEntry struct {
	UserID  primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role    rbac.ClassRole     `json:"role" bson:"role" example:"student"`
	AddedAt time.Time          `json:"addedAt" bson:"addedAt" example:"2024-01-15T09:30:00Z"`
}

// ResultEntry is one recorded result for a roster member, e.g. a lap time
// or an assessment grade.
type ResultEntry struct {
	UserID     primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Label      string             `json:"label" bson:"label" example:"100m freestyle"`
	Value      string             `json:"value" bson:"value" example:"1:02.5"`
	RecordedBy primitive.ObjectID `json:"recordedBy" bson:"recordedBy" example:"507f1f77bcf86cd799439014"`
	RecordedAt time.Time          `json:"recordedAt" bson:"recordedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"U12 Tuesday group"`
}

// UpdateClassRequest is the payload for renaming a class.
type UpdateClassRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"U12 Wednesday group"`
}

// AddRosterEntryRequest is the payload for adding a user to a class roster.
type AddRosterEntryRequest struct {
	UserID string         `json:"userId" binding:"required" example:"507f1f77bcf86cd799439013"`
	Role   rbac.ClassRole `json:"role" binding:"required,classrole" example:"student"`
}

// RecordResultRequest is the payload for recording a result for a roster
// member.
type RecordResultRequest struct {
	UserID string `json:"userId" binding:"required" example:"507f1f77bcf86cd799439013"`
	Label  string `json:"label" binding:"required,min=1,max=100" example:"100m freestyle"`
	Value  string `json:"value" binding:"required,min=1,max=100" example:"1:02.5"`
}

// ClassListResponse is the response for listing classes.
type ClassListResponse struct {
	Items []Class `json:"items"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentStatus represents the publication state of a content item.
type ContentStatus string

const (
	// ContentDraft indicates the item is only visible to roles that can
	// manage content.
	ContentDraft ContentStatus = "draft"
	// ContentPublished indicates the item is visible to every member.
	ContentPublished ContentStatus = "published"
)

// Content represents a training plan, announcement or lesson material
// belonging to one organization.
type Content struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	OrgID         primitive.ObjectID `json:"orgId" bson:"orgId" example:"507f1f77bcf86cd799439012"`
	AuthorID      primitive.ObjectID `json:"authorId" bson:"authorId" example:"507f1f77bcf86cd799439013"`
	Title         string             `json:"title" bson:"title" example:"U12 training plan, week 4"`
	Body          string             `json:"body" bson:"body" example:"Warm-up: 10 minutes of..."`
	Tags          []string           `json:"tags" bson:"tags" example:"training,u12"`
	Status        ContentStatus      `json:"status" bson:"status" example:"published"`
	AttachmentKey string             `json:"-" bson:"attachmentKey"`                                                                       // S3 key, not exposed in JSON
	AttachmentURL string             `json:"attachmentUrl,omitempty" bson:"-" example:"https://bucket.s3.amazonaws.com/content/123.pdf"` // Pre-signed URL, not stored in DB
	PublishedAt   *time.Time         `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T10:00:00Z"`
	DeletedAt     *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// CreateContentRequest is the payload for creating a content item.
type CreateContentRequest struct {
	Title      string             `json:"title" binding:"required,min=1,max=200" example:"U12 training plan, week 4"`
	Body       string             `json:"body" binding:"required,max=20000" example:"Warm-up: 10 minutes of..."`
	Tags       []string           `json:"tags" binding:"max=10,dive,max=50" example:"training,u12"`
	Attachment *AttachmentRequest `json:"attachment" binding:"omitempty"`
}

// AttachmentRequest describes a file the client wants to upload alongside a
// content item.
type AttachmentRequest struct {
	FileName string `json:"fileName" binding:"required,max=200" example:"week4.pdf"`
	FileSize int64  `json:"fileSize" binding:"required,gt=0,max=52428800" example:"1048576"` // max 50MB
}

// CreateContentResponse is the response for creating a content item. The
// upload URL is present only when an attachment was requested.
type CreateContentResponse struct {
	Content   Content `json:"content"`
	UploadURL string  `json:"uploadUrl,omitempty" example:"https://s3.amazonaws.com/bucket/content/...?X-Amz-Algorithm=..."`
}

// UpdateContentRequest is the payload for updating a content item.
type UpdateContentRequest struct {
	Title *string   `json:"title" binding:"omitempty,min=1,max=200" example:"U12 training plan, week 5"`
	Body  *string   `json:"body" binding:"omitempty,max=20000" example:"Updated plan..."`
	Tags  *[]string `json:"tags" binding:"omitempty,max=10,dive,max=50" example:"training,u12"`
}

// ContentListResponse is the response for listing content items.
type ContentListResponse struct {
	Items      []Content  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}

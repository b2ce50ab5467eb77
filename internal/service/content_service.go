package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/repository"
	"clubhub/internal/storage"
)

const (
	// downloadURLExpiry is the lifetime of pre-signed download URLs.
	downloadURLExpiry = 1 * time.Hour
	// uploadURLExpiry is the lifetime of pre-signed upload URLs.
	uploadURLExpiry = 15 * time.Minute
)

// ContentService handles business logic for content operations. Attachments
// live in object storage; clients upload and download them through
// pre-signed URLs.
type ContentService struct {
	repo    repository.ContentRepository
	storage storage.Storage
}

// NewContentService creates a new ContentService.
func NewContentService(repo repository.ContentRepository, storage storage.Storage) *ContentService {
	return &ContentService{
		repo:    repo,
		storage: storage,
	}
}

// CreateContent creates a content item as a draft. When an attachment is
// requested, the response carries a pre-signed upload URL.
func (s *ContentService) CreateContent(ctx context.Context, orgID, authorID primitive.ObjectID, req *models.CreateContentRequest) (*models.CreateContentResponse, error) {
	content := &models.Content{
		OrgID:    orgID,
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
		Tags:     req.Tags,
	}

	if req.Attachment != nil {
		content.AttachmentKey = attachmentKey(orgID, req.Attachment.FileName)
	}

	if err := s.repo.Create(ctx, content); err != nil {
		return nil, err
	}

	resp := &models.CreateContentResponse{Content: *content}

	if req.Attachment != nil {
		uploadURL, err := s.storage.GetPresignedPutURL(ctx, content.AttachmentKey, contentTypeFor(req.Attachment.FileName), uploadURLExpiry)
		if err != nil {
			return nil, err
		}
		resp.UploadURL = uploadURL
	}

	return resp, nil
}

// ListContent retrieves paginated content for an organization with
// pre-signed download URLs. Viewers who cannot manage content see only
// published items regardless of the requested filter.
func (s *ContentService) ListContent(ctx context.Context, orgID primitive.ObjectID, filter repository.ContentFilter, page, limit int, includeDrafts bool) (*models.ContentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if !includeDrafts {
		filter.Status = models.ContentPublished
	}

	items, total, err := s.repo.FindByOrgID(ctx, orgID, filter, page, limit)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].AttachmentKey != "" {
			url, err := s.storage.GetPresignedURL(ctx, items[i].AttachmentKey, downloadURLExpiry)
			if err != nil {
				// URL stays empty, the item itself is still served
				continue
			}
			items[i].AttachmentURL = url
		}
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.ContentListResponse{
		Items: items,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetContent retrieves a content item with a pre-signed download URL.
// Drafts are visible only to callers who can manage content.
func (s *ContentService) GetContent(ctx context.Context, orgID, contentID primitive.ObjectID, includeDrafts bool) (*models.Content, error) {
	content, err := s.repo.FindByID(ctx, orgID, contentID)
	if err != nil {
		return nil, err
	}

	if content.Status == models.ContentDraft && !includeDrafts {
		return nil, apperrors.ErrContentNotFound
	}

	if content.AttachmentKey != "" {
		url, err := s.storage.GetPresignedURL(ctx, content.AttachmentKey, downloadURLExpiry)
		if err == nil {
			content.AttachmentURL = url
		}
	}

	return content, nil
}

// UpdateContent updates a content item's fields.
func (s *ContentService) UpdateContent(ctx context.Context, orgID, contentID primitive.ObjectID, req *models.UpdateContentRequest) (*models.Content, error) {
	content, err := s.repo.FindByID(ctx, orgID, contentID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Body != nil {
		content.Body = *req.Body
	}
	if req.Tags != nil {
		content.Tags = *req.Tags
	}

	if err := s.repo.Update(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

// PublishContent transitions a draft to published. Publishing is one-way and
// idempotency violations surface as ErrContentAlreadyPublished.
func (s *ContentService) PublishContent(ctx context.Context, orgID, contentID primitive.ObjectID) (*models.Content, error) {
	if err := s.repo.Publish(ctx, orgID, contentID); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, orgID, contentID)
}

// DeleteContent soft deletes a content item.
func (s *ContentService) DeleteContent(ctx context.Context, orgID, contentID primitive.ObjectID) error {
	return s.repo.SoftDelete(ctx, orgID, contentID)
}

// attachmentKey builds an object storage key scoped to the organization. A
// random prefix keeps same-named files from colliding.
func attachmentKey(orgID primitive.ObjectID, fileName string) string {
	return fmt.Sprintf("content/%s/%s_%s", orgID.Hex(), uuid.NewString(), fileName)
}

// contentTypeFor guesses a MIME type from the file extension.
func contentTypeFor(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

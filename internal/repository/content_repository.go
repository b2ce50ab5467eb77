package repository

import (
	"context"
	"errors"
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentFilter narrows content listings.
type ContentFilter struct {
	// Status limits results to one publication state. Empty = all.
	Status models.ContentStatus
	// Tag limits results to items carrying the tag. Empty = all.
	Tag string
}

// ContentRepository defines the interface for content data operations.
type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	FindByID(ctx context.Context, orgID, id primitive.ObjectID) (*models.Content, error)
	FindByOrgID(ctx context.Context, orgID primitive.ObjectID, filter ContentFilter, page, limit int) ([]models.Content, int, error)
	Update(ctx context.Context, content *models.Content) error
	Publish(ctx context.Context, orgID, id primitive.ObjectID) error
	SoftDelete(ctx context.Context, orgID, id primitive.ObjectID) error
	CountByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error)
	CountPublishedByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error)
}

// contentRepository implements ContentRepository using MongoDB.
type contentRepository struct {
	collection *mongo.Collection
}

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(db *mongo.Database) ContentRepository {
	return &contentRepository{
		collection: db.Collection("content"),
	}
}

// Create inserts a new content item into the database.
func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	content.ID = primitive.NewObjectID()
	content.CreatedAt = time.Now()
	content.UpdatedAt = time.Now()

	if content.Status == "" {
		content.Status = models.ContentDraft
	}

	_, err := r.collection.InsertOne(ctx, content)
	return err
}

// FindByID retrieves a content item by ID, scoped to one organization.
// Excludes soft-deleted items.
func (r *contentRepository) FindByID(ctx context.Context, orgID, id primitive.ObjectID) (*models.Content, error) {
	filter := bson.M{
		"_id":       id,
		"orgId":     orgID,
		"deletedAt": bson.M{"$exists": false},
	}

	var content models.Content
	err := r.collection.FindOne(ctx, filter).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, err
	}

	return &content, nil
}

// FindByOrgID returns paginated content for an organization, newest first.
func (r *contentRepository) FindByOrgID(ctx context.Context, orgID primitive.ObjectID, f ContentFilter, page, limit int) ([]models.Content, int, error) {
	skip := (page - 1) * limit

	filter := bson.M{
		"orgId":     orgID,
		"deletedAt": bson.M{"$exists": false},
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []models.Content
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	if items == nil {
		items = []models.Content{}
	}

	return items, int(count), nil
}

// Update saves changes to an existing content item.
func (r *contentRepository) Update(ctx context.Context, content *models.Content) error {
	content.UpdatedAt = time.Now()

	filter := bson.M{
		"_id":       content.ID,
		"orgId":     content.OrgID,
		"deletedAt": bson.M{"$exists": false},
	}

	result, err := r.collection.ReplaceOne(ctx, filter, content)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

// Publish transitions a draft item to published. Publishing twice fails.
func (r *contentRepository) Publish(ctx context.Context, orgID, id primitive.ObjectID) error {
	now := time.Now()
	filter := bson.M{
		"_id":       id,
		"orgId":     orgID,
		"status":    models.ContentDraft,
		"deletedAt": bson.M{"$exists": false},
	}

	update := bson.M{
		"$set": bson.M{
			"status":      models.ContentPublished,
			"publishedAt": now,
			"updatedAt":   now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the item does not exist or it is already published.
		if _, findErr := r.FindByID(ctx, orgID, id); findErr != nil {
			return findErr
		}
		return apperrors.ErrContentAlreadyPublished
	}

	return nil
}

// SoftDelete marks a content item as deleted.
func (r *contentRepository) SoftDelete(ctx context.Context, orgID, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":       id,
		"orgId":     orgID,
		"deletedAt": bson.M{"$exists": false},
	}

	update := bson.M{
		"$set": bson.M{
			"deletedAt": time.Now(),
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

// CountByOrgID returns the number of non-deleted content items.
func (r *contentRepository) CountByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error) {
	filter := bson.M{
		"orgId":     orgID,
		"deletedAt": bson.M{"$exists": false},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountPublishedByOrgID returns the number of published content items.
func (r *contentRepository) CountPublishedByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error) {
	filter := bson.M{
		"orgId":     orgID,
		"status":    models.ContentPublished,
		"deletedAt": bson.M{"$exists": false},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

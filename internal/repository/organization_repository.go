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
)

// OrganizationRepository defines the interface for organization data operations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error)
	FindBySlug(ctx context.Context, slug string) (*models.Organization, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Organization, int, error)
	Update(ctx context.Context, org *models.Organization) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

// organizationRepository implements OrganizationRepository using MongoDB.
type organizationRepository struct {
	collection *mongo.Collection
}

// NewOrganizationRepository creates a new OrganizationRepository.
func NewOrganizationRepository(db *mongo.Database) OrganizationRepository {
	return &organizationRepository{
		collection: db.Collection("organizations"),
	}
}

// Create inserts a new organization into the database.
func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	org.ID = primitive.NewObjectID()
	org.CreatedAt = time.Now()
	org.UpdatedAt = time.Now()

	if org.Seats == 0 {
		org.Seats = 50 // Default seats
	}

	_, err := r.collection.InsertOne(ctx, org)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrOrgSlugTaken
	}
	return err
}

// FindByID retrieves an organization by ID. Excludes soft-deleted organizations.
func (r *organizationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error) {
	filter := bson.M{
		"_id":       id,
		"deletedAt": bson.M{"$exists": false},
	}

	var org models.Organization
	err := r.collection.FindOne(ctx, filter).Decode(&org)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrgNotFound
		}
		return nil, err
	}

	return &org, nil
}

// FindBySlug retrieves an organization by slug. Excludes soft-deleted organizations.
func (r *organizationRepository) FindBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	filter := bson.M{
		"slug":      slug,
		"deletedAt": bson.M{"$exists": false},
	}

	var org models.Organization
	err := r.collection.FindOne(ctx, filter).Decode(&org)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrgNotFound
		}
		return nil, err
	}

	return &org, nil
}

// FindByUserID returns paginated organizations the user belongs to. Requires
// a lookup with the memberships collection.
func (r *organizationRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Organization, int, error) {
	skip := (page - 1) * limit

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deletedAt": bson.M{"$exists": false}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "memberships",
			"localField":   "_id",
			"foreignField": "orgId",
			"as":           "members",
		}}},
		{{Key: "$match", Value: bson.M{"members.userId": userID}}},
		{{Key: "$project", Value: bson.M{"members": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	countPipeline := append(pipeline, bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := r.collection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	defer countCursor.Close(ctx)

	var countResult []struct {
		Total int `bson:"total"`
	}
	if err := countCursor.All(ctx, &countResult); err != nil {
		return nil, 0, err
	}

	total := 0
	if len(countResult) > 0 {
		total = countResult[0].Total
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: int64(skip)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, 0, err
	}

	if orgs == nil {
		orgs = []models.Organization{}
	}

	return orgs, total, nil
}

// Update saves changes to an existing organization.
func (r *organizationRepository) Update(ctx context.Context, org *models.Organization) error {
	org.UpdatedAt = time.Now()

	filter := bson.M{
		"_id":       org.ID,
		"deletedAt": bson.M{"$exists": false},
	}

	result, err := r.collection.ReplaceOne(ctx, filter, org)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrOrgSlugTaken
		}
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrOrgNotFound
	}

	return nil
}

// SoftDelete marks an organization as deleted.
func (r *organizationRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":       id,
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
		return apperrors.ErrOrgNotFound
	}

	return nil
}

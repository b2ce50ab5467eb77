package repository

import (
	"context"
	"errors"
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/rbac"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MembershipRepository defines the interface for membership data operations.
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	FindByOrgAndUser(ctx context.Context, orgID, userID primitive.ObjectID) (*models.Membership, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error)
	FindCurrentByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Membership, error)
	FindByOrgIDWithUsers(ctx context.Context, orgID primitive.ObjectID, page, limit int) ([]models.MembershipWithUser, int, error)
	CountByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error)
	CountByOrgIDPerRole(ctx context.Context, orgID primitive.ObjectID) (map[string]int, error)
	UpdateRole(ctx context.Context, orgID, userID primitive.ObjectID, role rbac.Role) error
	SetPrimary(ctx context.Context, userID, orgID primitive.ObjectID) error
	Delete(ctx context.Context, orgID, userID primitive.ObjectID) error
	DeleteAllByOrgID(ctx context.Context, orgID primitive.ObjectID) error
}

// membershipRepository implements MembershipRepository using MongoDB.
type membershipRepository struct {
	collection *mongo.Collection
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	return &membershipRepository{
		collection: db.Collection("memberships"),
	}
}

// Create inserts a new membership into the database.
func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	membership.ID = primitive.NewObjectID()
	membership.JoinedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, membership)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrAlreadyMember
	}
	return err
}

// FindByOrgAndUser returns a membership by organization and user ID.
func (r *membershipRepository) FindByOrgAndUser(ctx context.Context, orgID, userID primitive.ObjectID) (*models.Membership, error) {
	filter := bson.M{
		"orgId":  orgID,
		"userId": userID,
	}

	var membership models.Membership
	err := r.collection.FindOne(ctx, filter).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotOrgMember
		}
		return nil, err
	}

	return &membership, nil
}

// FindByUserID returns all memberships for a user.
func (r *membershipRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}

	if memberships == nil {
		memberships = []models.Membership{}
	}

	return memberships, nil
}

// FindCurrentByUserID returns the membership that decides the user's current
// organization: the one marked primary, falling back to the earliest joined.
func (r *membershipRepository) FindCurrentByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Membership, error) {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "primary", Value: -1},
		{Key: "joinedAt", Value: 1},
	})

	var membership models.Membership
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotOrgMember
		}
		return nil, err
	}

	return &membership, nil
}

// FindByOrgIDWithUsers returns paginated memberships with user details expanded.
func (r *membershipRepository) FindByOrgIDWithUsers(ctx context.Context, orgID primitive.ObjectID, page, limit int) ([]models.MembershipWithUser, int, error) {
	skip := (page - 1) * limit

	total, err := r.CountByOrgID(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"orgId": orgID}}},
		{{Key: "$sort", Value: bson.D{{Key: "joinedAt", Value: 1}}}},
		{{Key: "$skip", Value: int64(skip)}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"orgId":      1,
			"userId":     1,
			"role":       1,
			"joinedAt":   1,
			"user._id":   1,
			"user.email": 1,
			"user.name":  1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var raw []struct {
		ID       primitive.ObjectID `bson:"_id"`
		OrgID    primitive.ObjectID `bson:"orgId"`
		UserID   primitive.ObjectID `bson:"userId"`
		Role     rbac.Role          `bson:"role"`
		JoinedAt time.Time          `bson:"joinedAt"`
		User     *struct {
			ID    primitive.ObjectID `bson:"_id"`
			Email string             `bson:"email"`
			Name  string             `bson:"name"`
		} `bson:"user"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, 0, err
	}

	members := make([]models.MembershipWithUser, 0, len(raw))
	for _, m := range raw {
		member := models.MembershipWithUser{
			ID:       m.ID,
			OrgID:    m.OrgID,
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			member.User = &models.UserSummary{
				ID:    m.User.ID,
				Email: m.User.Email,
				Name:  m.User.Name,
			}
		}
		members = append(members, member)
	}

	return members, total, nil
}

// CountByOrgID returns the number of members in an organization.
func (r *membershipRepository) CountByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"orgId": orgID})
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountByOrgIDPerRole returns the number of members per role.
func (r *membershipRepository) CountByOrgIDPerRole(ctx context.Context, orgID primitive.ObjectID) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"orgId": orgID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$role",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Role  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(results))
	for _, res := range results {
		counts[res.Role] = res.Count
	}

	return counts, nil
}

// UpdateRole updates a member's role.
func (r *membershipRepository) UpdateRole(ctx context.Context, orgID, userID primitive.ObjectID, role rbac.Role) error {
	filter := bson.M{
		"orgId":  orgID,
		"userId": userID,
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotOrgMember
	}

	return nil
}

// SetPrimary marks one membership as the user's primary organization and
// clears the flag on the rest.
func (r *membershipRepository) SetPrimary(ctx context.Context, userID, orgID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"primary": false}},
	)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": userID, "orgId": orgID},
		bson.M{"$set": bson.M{"primary": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotOrgMember
	}

	return nil
}

// Delete removes a membership.
func (r *membershipRepository) Delete(ctx context.Context, orgID, userID primitive.ObjectID) error {
	filter := bson.M{
		"orgId":  orgID,
		"userId": userID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotOrgMember
	}

	return nil
}

// DeleteAllByOrgID removes all memberships of an organization (used when
// deleting an organization).
func (r *membershipRepository) DeleteAllByOrgID(ctx context.Context, orgID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"orgId": orgID})
	return err
}

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
)

// InvitationRepository defines the interface for invitation data operations.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Invitation, error)
	FindByToken(ctx context.Context, token string) (*models.Invitation, error)
	FindPendingByOrgID(ctx context.Context, orgID primitive.ObjectID) ([]models.Invitation, error)
	FindPendingByEmail(ctx context.Context, email string) ([]models.InvitationWithDetails, error)
	FindPendingByOrgAndEmail(ctx context.Context, orgID primitive.ObjectID, email string) (*models.Invitation, error)
	CountPendingByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByOrgID(ctx context.Context, orgID primitive.ObjectID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// invitationRepository implements InvitationRepository using MongoDB.
type invitationRepository struct {
	collection *mongo.Collection
}

// NewInvitationRepository creates a new InvitationRepository.
func NewInvitationRepository(db *mongo.Database) InvitationRepository {
	return &invitationRepository{
		collection: db.Collection("invitations"),
	}
}

// Create inserts a new invitation into the database.
func (r *invitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	invitation.ID = primitive.NewObjectID()
	invitation.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, invitation)
	return err
}

// FindByID retrieves an invitation by ID.
func (r *invitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// FindByToken retrieves an invitation by its opaque token.
func (r *invitationRepository) FindByToken(ctx context.Context, token string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// FindPendingByOrgID returns all unexpired invitations for an organization.
func (r *invitationRepository) FindPendingByOrgID(ctx context.Context, orgID primitive.ObjectID) ([]models.Invitation, error) {
	filter := bson.M{
		"orgId":     orgID,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []models.Invitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}

	if invitations == nil {
		invitations = []models.Invitation{}
	}

	return invitations, nil
}

// FindPendingByEmail returns all unexpired invitations addressed to an email,
// with organization and inviter details expanded.
func (r *invitationRepository) FindPendingByEmail(ctx context.Context, email string) ([]models.InvitationWithDetails, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"email":     email,
			"expiresAt": bson.M{"$gt": time.Now()},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "organizations",
			"localField":   "orgId",
			"foreignField": "_id",
			"as":           "organization",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$organization",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "invitedBy",
			"foreignField": "_id",
			"as":           "inviter",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$inviter",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []struct {
		ID           primitive.ObjectID `bson:"_id"`
		Role         rbac.Role          `bson:"role"`
		ExpiresAt    time.Time          `bson:"expiresAt"`
		CreatedAt    time.Time          `bson:"createdAt"`
		Organization *struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
			Slug string             `bson:"slug"`
		} `bson:"organization"`
		Inviter *struct {
			ID    primitive.ObjectID `bson:"_id"`
			Email string             `bson:"email"`
			Name  string             `bson:"name"`
		} `bson:"inviter"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	invitations := make([]models.InvitationWithDetails, 0, len(raw))
	for _, inv := range raw {
		detail := models.InvitationWithDetails{
			ID:        inv.ID,
			Role:      inv.Role,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		}
		if inv.Organization != nil {
			detail.Organization = &models.OrganizationSummary{
				ID:   inv.Organization.ID,
				Name: inv.Organization.Name,
				Slug: inv.Organization.Slug,
			}
		}
		if inv.Inviter != nil {
			detail.InvitedBy = &models.UserSummary{
				ID:    inv.Inviter.ID,
				Email: inv.Inviter.Email,
				Name:  inv.Inviter.Name,
			}
		}
		invitations = append(invitations, detail)
	}

	return invitations, nil
}

// FindPendingByOrgAndEmail returns the unexpired invitation for an email in
// an organization, if one exists.
func (r *invitationRepository) FindPendingByOrgAndEmail(ctx context.Context, orgID primitive.ObjectID, email string) (*models.Invitation, error) {
	filter := bson.M{
		"orgId":     orgID,
		"email":     email,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	var invitation models.Invitation
	err := r.collection.FindOne(ctx, filter).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// CountPendingByOrgID returns the number of unexpired invitations for an
// organization.
func (r *invitationRepository) CountPendingByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error) {
	filter := bson.M{
		"orgId":     orgID,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// Delete removes an invitation.
func (r *invitationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrInvitationNotFound
	}

	return nil
}

// DeleteAllByOrgID removes all invitations for an organization.
func (r *invitationRepository) DeleteAllByOrgID(ctx context.Context, orgID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"orgId": orgID})
	return err
}

// DeleteExpired removes invitations that expired before now. Returns the
// number of invitations removed.
func (r *invitationRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}

	return int(result.DeletedCount), nil
}

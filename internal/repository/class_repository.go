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

// ClassRepository defines the interface for class data operations.
type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) error
	FindByID(ctx context.Context, orgID, id primitive.ObjectID) (*models.Class, error)
	FindByOrgID(ctx context.Context, orgID primitive.ObjectID) ([]models.Class, error)
	Rename(ctx context.Context, orgID, id primitive.ObjectID, name string) error
	Delete(ctx context.Context, orgID, id primitive.ObjectID) error
	AddRosterEntry(ctx context.Context, orgID, classID primitive.ObjectID, entry models.RosterEntry) error
	RemoveRosterEntry(ctx context.Context, orgID, classID, userID primitive.ObjectID) error
	AddResult(ctx context.Context, orgID, classID primitive.ObjectID, entry models.ResultEntry) error
	RosterRole(ctx context.Context, classID, userID primitive.ObjectID) (rbac.ClassRole, error)
	CountByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error)
}

// classRepository implements ClassRepository using MongoDB.
type classRepository struct {
	collection *mongo.Collection
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db *mongo.Database) ClassRepository {
	return &classRepository{
		collection: db.Collection("classes"),
	}
}

// Create inserts a new class into the database.
func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	class.ID = primitive.NewObjectID()
	class.CreatedAt = time.Now()
	class.UpdatedAt = time.Now()

	if class.Roster == nil {
		class.Roster = []models.RosterEntry{}
	}
	if class.Results == nil {
		class.Results = []models.ResultEntry{}
	}

	_, err := r.collection.InsertOne(ctx, class)
	return err
}

// FindByID retrieves a class by ID, scoped to one organization.
func (r *classRepository) FindByID(ctx context.Context, orgID, id primitive.ObjectID) (*models.Class, error) {
	filter := bson.M{
		"_id":   id,
		"orgId": orgID,
	}

	var class models.Class
	err := r.collection.FindOne(ctx, filter).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}

	return &class, nil
}

// FindByOrgID returns all classes of an organization.
func (r *classRepository) FindByOrgID(ctx context.Context, orgID primitive.ObjectID) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"orgId": orgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}

	if classes == nil {
		classes = []models.Class{}
	}

	return classes, nil
}

// Rename updates a class name.
func (r *classRepository) Rename(ctx context.Context, orgID, id primitive.ObjectID, name string) error {
	filter := bson.M{
		"_id":   id,
		"orgId": orgID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":      name,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// Delete removes a class and its roster.
func (r *classRepository) Delete(ctx context.Context, orgID, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":   id,
		"orgId": orgID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// AddRosterEntry appends a user to a class roster. Fails when the user is
// already on the roster.
func (r *classRepository) AddRosterEntry(ctx context.Context, orgID, classID primitive.ObjectID, entry models.RosterEntry) error {
	entry.AddedAt = time.Now()

	filter := bson.M{
		"_id":           classID,
		"orgId":         orgID,
		"roster.userId": bson.M{"$ne": entry.UserID},
	}

	update := bson.M{
		"$push": bson.M{"roster": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the class does not exist or the user is already enrolled.
		if _, findErr := r.FindByID(ctx, orgID, classID); findErr != nil {
			return findErr
		}
		return apperrors.ErrAlreadyEnrolled
	}

	return nil
}

// RemoveRosterEntry removes a user from a class roster.
func (r *classRepository) RemoveRosterEntry(ctx context.Context, orgID, classID, userID primitive.ObjectID) error {
	filter := bson.M{
		"_id":           classID,
		"orgId":         orgID,
		"roster.userId": userID,
	}

	update := bson.M{
		"$pull": bson.M{"roster": bson.M{"userId": userID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if _, findErr := r.FindByID(ctx, orgID, classID); findErr != nil {
			return findErr
		}
		return apperrors.ErrNotClassMember
	}

	return nil
}

// AddResult appends a result entry for a roster member. Fails when the
// target user is not on the roster.
func (r *classRepository) AddResult(ctx context.Context, orgID, classID primitive.ObjectID, entry models.ResultEntry) error {
	entry.RecordedAt = time.Now()

	filter := bson.M{
		"_id":           classID,
		"orgId":         orgID,
		"roster.userId": entry.UserID,
	}

	update := bson.M{
		"$push": bson.M{"results": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if _, findErr := r.FindByID(ctx, orgID, classID); findErr != nil {
			return findErr
		}
		return apperrors.ErrNotClassMember
	}

	return nil
}

// RosterRole returns the user's role on a class roster.
func (r *classRepository) RosterRole(ctx context.Context, classID, userID primitive.ObjectID) (rbac.ClassRole, error) {
	filter := bson.M{
		"_id":           classID,
		"roster.userId": userID,
	}

	var class models.Class
	err := r.collection.FindOne(ctx, filter).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.ErrNotClassMember
		}
		return "", err
	}

	for _, entry := range class.Roster {
		if entry.UserID == userID {
			return entry.Role, nil
		}
	}

	return "", apperrors.ErrNotClassMember
}

// CountByOrgID returns the number of classes in an organization.
func (r *classRepository) CountByOrgID(ctx context.Context, orgID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"orgId": orgID})
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/repository"
)

// ClassService handles business logic for class and roster operations.
type ClassService struct {
	classRepo      repository.ClassRepository
	membershipRepo repository.MembershipRepository
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo repository.ClassRepository, membershipRepo repository.MembershipRepository) *ClassService {
	return &ClassService{
		classRepo:      classRepo,
		membershipRepo: membershipRepo,
	}
}

// CreateClass creates a new class with an empty roster.
func (s *ClassService) CreateClass(ctx context.Context, orgID primitive.ObjectID, req *models.CreateClassRequest) (*models.Class, error) {
	class := &models.Class{
		OrgID:  orgID,
		Name:   req.Name,
		Roster: []models.RosterEntry{},
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}

// ListClasses returns all classes of an organization.
func (s *ClassService) ListClasses(ctx context.Context, orgID primitive.ObjectID) (*models.ClassListResponse, error) {
	classes, err := s.classRepo.FindByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &models.ClassListResponse{
		Items: classes,
	}, nil
}

// GetClass retrieves a class by ID.
func (s *ClassService) GetClass(ctx context.Context, orgID, classID primitive.ObjectID) (*models.Class, error) {
	return s.classRepo.FindByID(ctx, orgID, classID)
}

// RenameClass renames a class.
func (s *ClassService) RenameClass(ctx context.Context, orgID, classID primitive.ObjectID, req *models.UpdateClassRequest) (*models.Class, error) {
	if err := s.classRepo.Rename(ctx, orgID, classID, req.Name); err != nil {
		return nil, err
	}

	return s.classRepo.FindByID(ctx, orgID, classID)
}

// DeleteClass removes a class and its roster.
func (s *ClassService) DeleteClass(ctx context.Context, orgID, classID primitive.ObjectID) error {
	return s.classRepo.Delete(ctx, orgID, classID)
}

// AddRosterEntry adds an organization member to a class roster. Users who
// are not members of the organization cannot be enrolled.
func (s *ClassService) AddRosterEntry(ctx context.Context, orgID, classID primitive.ObjectID, req *models.AddRosterEntryRequest) (*models.Class, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrNotOrgMember
	}

	if _, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, userID); err != nil {
		return nil, apperrors.ErrNotOrgMember
	}

	entry := models.RosterEntry{
		UserID:  userID,
		Role:    req.Role,
		AddedAt: time.Now(),
	}

	if err := s.classRepo.AddRosterEntry(ctx, orgID, classID, entry); err != nil {
		return nil, err
	}

	return s.classRepo.FindByID(ctx, orgID, classID)
}

// RemoveRosterEntry removes a user from a class roster.
func (s *ClassService) RemoveRosterEntry(ctx context.Context, orgID, classID, userID primitive.ObjectID) error {
	return s.classRepo.RemoveRosterEntry(ctx, orgID, classID, userID)
}

// RecordResult records a result for a roster member. The target must be on
// the class roster.
func (s *ClassService) RecordResult(ctx context.Context, orgID, classID, recordedBy primitive.ObjectID, req *models.RecordResultRequest) (*models.Class, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrNotClassMember
	}

	entry := models.ResultEntry{
		UserID:     userID,
		Label:      req.Label,
		Value:      req.Value,
		RecordedBy: recordedBy,
		RecordedAt: time.Now(),
	}

	if err := s.classRepo.AddResult(ctx, orgID, classID, entry); err != nil {
		return nil, err
	}

	return s.classRepo.FindByID(ctx, orgID, classID)
}

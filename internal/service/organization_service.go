package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubhub/internal/cache"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/internal/repository"
)

const orgStatsCacheTTL = 5 * time.Minute

// OrganizationService handles business logic for organization operations.
type OrganizationService struct {
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	invitationRepo repository.InvitationRepository
	contentRepo    repository.ContentRepository
	classRepo      repository.ClassRepository
	cache          cache.Cache
	resolver       *rbac.Resolver
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	invitationRepo repository.InvitationRepository,
	contentRepo repository.ContentRepository,
	classRepo repository.ClassRepository,
	cache cache.Cache,
	resolver *rbac.Resolver,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		contentRepo:    contentRepo,
		classRepo:      classRepo,
		cache:          cache,
		resolver:       resolver,
	}
}

// CreateOrganization creates a new organization and adds the creator as its
// owner. The new membership is marked primary so the organization becomes
// the creator's current one.
func (s *OrganizationService) CreateOrganization(ctx context.Context, userID primitive.ObjectID, req *models.CreateOrganizationRequest) (*models.Organization, error) {
	// Check if slug is taken
	_, err := s.orgRepo.FindBySlug(ctx, req.Slug)
	if err == nil {
		return nil, apperrors.ErrOrgSlugTaken
	}
	if !errors.Is(err, apperrors.ErrOrgNotFound) {
		return nil, err
	}

	org := &models.Organization{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		OwnerID:     userID,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	membership := &models.Membership{
		OrgID:  org.ID,
		UserID: userID,
		Role:   rbac.RoleOwner,
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		// Rollback organization creation on failure
		_ = s.orgRepo.SoftDelete(ctx, org.ID)
		return nil, err
	}

	// The new organization becomes the creator's current one
	if err := s.membershipRepo.SetPrimary(ctx, userID, org.ID); err != nil {
		return nil, err
	}

	return org, nil
}

// ListMyOrganizations returns paginated organizations the user belongs to.
func (s *OrganizationService) ListMyOrganizations(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.OrganizationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	orgs, total, err := s.orgRepo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.OrganizationListResponse{
		Items: orgs,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetOrganization retrieves an organization by ID.
func (s *OrganizationService) GetOrganization(ctx context.Context, orgID primitive.ObjectID) (*models.Organization, error) {
	return s.orgRepo.FindByID(ctx, orgID)
}

// UpdateOrganization updates an organization's information.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, orgID primitive.ObjectID, req *models.UpdateOrganizationRequest) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Slug != nil {
		// Check if new slug is taken by another organization
		existing, err := s.orgRepo.FindBySlug(ctx, *req.Slug)
		if err == nil && existing.ID != orgID {
			return nil, apperrors.ErrOrgSlugTaken
		}
		if err != nil && !errors.Is(err, apperrors.ErrOrgNotFound) {
			return nil, err
		}
		org.Slug = *req.Slug
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	if req.LogoURL != nil {
		org.LogoURL = *req.LogoURL
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// DeleteOrganization soft deletes an organization and removes its
// memberships and pending invitations. Content and classes stay behind the
// soft-deleted organization and are unreachable through the API.
func (s *OrganizationService) DeleteOrganization(ctx context.Context, orgID primitive.ObjectID) error {
	if err := s.membershipRepo.DeleteAllByOrgID(ctx, orgID); err != nil {
		return err
	}

	if err := s.invitationRepo.DeleteAllByOrgID(ctx, orgID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.OrgStatsCacheKey(orgID.Hex()))

	return s.orgRepo.SoftDelete(ctx, orgID)
}

// TransferOwnership transfers organization ownership to another member. The
// previous owner stays in the organization as an admin.
func (s *OrganizationService) TransferOwnership(ctx context.Context, orgID, currentOwnerID, newOwnerID primitive.ObjectID) error {
	// Verify new owner is a member
	newOwnerMembership, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, newOwnerID)
	if err != nil {
		return apperrors.ErrNotOrgMember
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return err
	}

	if err := s.membershipRepo.UpdateRole(ctx, orgID, newOwnerID, rbac.RoleOwner); err != nil {
		return err
	}

	if err := s.membershipRepo.UpdateRole(ctx, orgID, currentOwnerID, rbac.RoleAdmin); err != nil {
		// Rollback new owner role change
		_ = s.membershipRepo.UpdateRole(ctx, orgID, newOwnerID, newOwnerMembership.Role)
		return err
	}

	org.OwnerID = newOwnerID
	if err := s.orgRepo.Update(ctx, org); err != nil {
		// Rollback both role changes
		_ = s.membershipRepo.UpdateRole(ctx, orgID, currentOwnerID, rbac.RoleOwner)
		_ = s.membershipRepo.UpdateRole(ctx, orgID, newOwnerID, newOwnerMembership.Role)
		return err
	}

	s.resolver.Invalidate(currentOwnerID, orgID)
	s.resolver.Invalidate(newOwnerID, orgID)
	return nil
}

// GetStats returns an aggregated view of organization activity (with
// caching).
func (s *OrganizationService) GetStats(ctx context.Context, orgID primitive.ObjectID) (*models.OrganizationStats, error) {
	cacheKey := cache.OrgStatsCacheKey(orgID.Hex())
	var cached models.OrganizationStats
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.membershipRepo.CountByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	membersByRole, err := s.membershipRepo.CountByOrgIDPerRole(ctx, orgID)
	if err != nil {
		return nil, err
	}
	pendingInvitations, err := s.invitationRepo.CountPendingByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	contentCount, err := s.contentRepo.CountByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	publishedContent, err := s.contentRepo.CountPublishedByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	classCount, err := s.classRepo.CountByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	stats := &models.OrganizationStats{
		MemberCount:        memberCount,
		MembersByRole:      membersByRole,
		PendingInvitations: pendingInvitations,
		ContentCount:       contentCount,
		PublishedContent:   publishedContent,
		ClassCount:         classCount,
		SeatsUsed:          memberCount + pendingInvitations,
		SeatsTotal:         org.Seats,
	}

	_ = s.cache.Set(ctx, cacheKey, stats, orgStatsCacheTTL)

	return stats, nil
}

package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/internal/repository"
)

// MembershipService handles business logic for organization member
// operations. Role mutations invalidate the resolver's cached role so the
// next request sees the new role.
type MembershipService struct {
	membershipRepo repository.MembershipRepository
	resolver       *rbac.Resolver
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(membershipRepo repository.MembershipRepository, resolver *rbac.Resolver) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		resolver:       resolver,
	}
}

// ListMembers returns paginated members of an organization with user details.
func (s *MembershipService) ListMembers(ctx context.Context, orgID primitive.ObjectID, page, limit int) (*models.MembershipListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	members, total, err := s.membershipRepo.FindByOrgIDWithUsers(ctx, orgID, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.MembershipListResponse{
		Items: members,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetMember returns a membership by organization and user ID.
func (s *MembershipService) GetMember(ctx context.Context, orgID, userID primitive.ObjectID) (*models.Membership, error) {
	return s.membershipRepo.FindByOrgAndUser(ctx, orgID, userID)
}

// RemoveMember removes a member from an organization.
func (s *MembershipService) RemoveMember(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID) error {
	targetMembership, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, targetUserID)
	if err != nil {
		return apperrors.ErrNotOrgMember
	}

	// Cannot remove owner
	if targetMembership.Role == rbac.RoleOwner {
		return apperrors.ErrCannotRemoveOwner
	}

	// Cannot remove self (use leave endpoint)
	if targetUserID == requestingUserID {
		return apperrors.ErrCannotRemoveSelf
	}

	// Only owner can remove an admin
	if targetMembership.Role == rbac.RoleAdmin {
		requestingMembership, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, requestingUserID)
		if err != nil || requestingMembership.Role != rbac.RoleOwner {
			return apperrors.ErrInsufficientPermissions
		}
	}

	if err := s.membershipRepo.Delete(ctx, orgID, targetUserID); err != nil {
		return err
	}

	s.resolver.Invalidate(targetUserID, orgID)
	return nil
}

// UpdateRole updates a member's role in an organization.
func (s *MembershipService) UpdateRole(ctx context.Context, orgID, targetUserID, requestingUserID primitive.ObjectID, newRole rbac.Role) error {
	// Owner is granted by transfer, never by role change
	if !newRole.Valid() || newRole == rbac.RoleOwner {
		return apperrors.ErrInvalidRole
	}

	targetMembership, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, targetUserID)
	if err != nil {
		return apperrors.ErrNotOrgMember
	}

	// Cannot change owner role
	if targetMembership.Role == rbac.RoleOwner {
		return apperrors.ErrCannotChangeOwnerRole
	}

	// Only owner can change an admin's role
	if targetMembership.Role == rbac.RoleAdmin {
		requestingMembership, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, requestingUserID)
		if err != nil || requestingMembership.Role != rbac.RoleOwner {
			return apperrors.ErrInsufficientPermissions
		}
	}

	if err := s.membershipRepo.UpdateRole(ctx, orgID, targetUserID, newRole); err != nil {
		return err
	}

	s.resolver.Invalidate(targetUserID, orgID)
	return nil
}

// Leave removes the requesting user from an organization.
func (s *MembershipService) Leave(ctx context.Context, orgID, userID primitive.ObjectID) error {
	membership, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		return apperrors.ErrNotOrgMember
	}

	// Owner cannot leave
	if membership.Role == rbac.RoleOwner {
		return apperrors.ErrOwnerCannotLeave
	}

	if err := s.membershipRepo.Delete(ctx, orgID, userID); err != nil {
		return err
	}

	s.resolver.Invalidate(userID, orgID)
	return nil
}

// SetPrimary marks an organization as the user's current one. The user must
// be a member of that organization.
func (s *MembershipService) SetPrimary(ctx context.Context, userID, orgID primitive.ObjectID) error {
	if _, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, userID); err != nil {
		return apperrors.ErrNotOrgMember
	}

	return s.membershipRepo.SetPrimary(ctx, userID, orgID)
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/queue"
	"clubhub/internal/repository"
)

// invitationTTL is how long an invitation token stays valid.
const invitationTTL = 7 * 24 * time.Hour

// InvitationService handles business logic for invitation operations.
// Invitation emails are delivered asynchronously through the notification
// queue.
type InvitationService struct {
	invitationRepo repository.InvitationRepository
	membershipRepo repository.MembershipRepository
	orgRepo        repository.OrganizationRepository
	userRepo       repository.UserRepository
	queue          queue.Queue
	logger         *logrus.Logger
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	membershipRepo repository.MembershipRepository,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	notifications queue.Queue,
	logger *logrus.Logger,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		membershipRepo: membershipRepo,
		orgRepo:        orgRepo,
		userRepo:       userRepo,
		queue:          notifications,
		logger:         logger,
	}
}

// CreateInvitation creates a new invitation to join an organization and
// queues its email for delivery.
func (s *InvitationService) CreateInvitation(ctx context.Context, orgID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.Invitation, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Get organization to check seats
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	// Check if email already belongs to a member
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		_, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, user.ID)
		if err == nil {
			return nil, apperrors.ErrAlreadyMember
		}
	}

	// Check for existing pending invitation
	_, err = s.invitationRepo.FindPendingByOrgAndEmail(ctx, orgID, email)
	if err == nil {
		return nil, apperrors.ErrPendingInvitation
	}
	if !errors.Is(err, apperrors.ErrInvitationNotFound) {
		return nil, err
	}

	// Check seats limit (members + pending invitations)
	memberCount, err := s.membershipRepo.CountByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	invitationCount, err := s.invitationRepo.CountPendingByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if memberCount+invitationCount >= org.Seats {
		return nil, apperrors.ErrSeatsExceeded
	}

	invitation := &models.Invitation{
		OrgID:     orgID,
		Email:     email,
		Role:      req.Role,
		Token:     uuid.NewString(),
		InvitedBy: inviterID,
		ExpiresAt: time.Now().Add(invitationTTL),
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	// Queue the invitation email. A full queue rolls the invitation back so
	// the inviter can retry instead of leaving a silent, mail-less invite.
	job := queue.NotificationJob{
		InvitationID: invitation.ID,
		OrgName:      org.Name,
		Email:        email,
		Token:        invitation.Token,
		Role:         invitation.Role,
	}
	if err := s.queue.Enqueue(job); err != nil {
		_ = s.invitationRepo.Delete(ctx, invitation.ID)
		if errors.Is(err, queue.ErrQueueFull) {
			return nil, apperrors.ErrNotificationQueueFull
		}
		return nil, err
	}

	return invitation, nil
}

// ListOrgInvitations returns all pending invitations for an organization.
func (s *InvitationService) ListOrgInvitations(ctx context.Context, orgID primitive.ObjectID) (*models.InvitationListResponse, error) {
	invitations, err := s.invitationRepo.FindPendingByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &models.InvitationListResponse{
		Items: invitations,
	}, nil
}

// CancelInvitation cancels a pending invitation.
func (s *InvitationService) CancelInvitation(ctx context.Context, invitationID, orgID primitive.ObjectID) error {
	// Verify invitation belongs to the organization
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.OrgID != orgID {
		return apperrors.ErrInvitationNotFound
	}

	return s.invitationRepo.Delete(ctx, invitationID)
}

// ListMyInvitations returns all pending invitations for a user's email.
func (s *InvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	invitations, err := s.invitationRepo.FindPendingByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &models.MyInvitationListResponse{
		Items: invitations,
	}, nil
}

// AcceptInvitation accepts an invitation by token and adds the user to the
// organization with the invited role.
func (s *InvitationService) AcceptInvitation(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error) {
	invitation, err := s.invitationRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	// Verify email matches
	email := strings.ToLower(strings.TrimSpace(userEmail))
	if strings.ToLower(invitation.Email) != email {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	// Check if invitation is expired
	if invitation.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrInvitationExpired
	}

	// Get organization to check seats
	org, err := s.orgRepo.FindByID(ctx, invitation.OrgID)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.membershipRepo.CountByOrgID(ctx, invitation.OrgID)
	if err != nil {
		return nil, err
	}
	if memberCount >= org.Seats {
		return nil, apperrors.ErrSeatsExceeded
	}

	// A user's first organization becomes their current one
	existing, err := s.membershipRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	membership := &models.Membership{
		OrgID:     invitation.OrgID,
		UserID:    userID,
		Role:      invitation.Role,
		Primary:   len(existing) == 0,
		InvitedBy: invitation.InvitedBy,
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	// Delete the invitation (member already created, so log error but don't fail)
	if err := s.invitationRepo.Delete(ctx, invitation.ID); err != nil {
		s.logger.WithError(err).WithField("invitation", invitation.ID.Hex()).
			Warn("failed to delete invitation after accepting")
	}

	return &models.AcceptInvitationResponse{
		Message: "invitation accepted",
		OrgID:   invitation.OrgID.Hex(),
	}, nil
}

// DeclineInvitation declines an invitation.
func (s *InvitationService) DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}

	// Verify email matches
	email := strings.ToLower(strings.TrimSpace(userEmail))
	if strings.ToLower(invitation.Email) != email {
		return apperrors.ErrInvitationEmailMismatch
	}

	return s.invitationRepo.Delete(ctx, invitationID)
}

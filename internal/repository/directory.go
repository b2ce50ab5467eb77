package repository

import (
	"context"

	"clubhub/internal/rbac"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// directory adapts the membership and organization repositories to the role
// resolver's lookup interface.
type directory struct {
	memberships MembershipRepository
	orgs        OrganizationRepository
}

// NewDirectory creates a membership directory backed by MongoDB.
func NewDirectory(memberships MembershipRepository, orgs OrganizationRepository) rbac.Directory {
	return &directory{
		memberships: memberships,
		orgs:        orgs,
	}
}

// CurrentOrgForUser resolves the user's current organization: the primary
// membership, falling back to the earliest joined. Memberships pointing at a
// deleted organization surface as ErrOrgNotFound from the org lookup, which
// the resolver folds into denial.
func (d *directory) CurrentOrgForUser(ctx context.Context, userID primitive.ObjectID) (*rbac.OrgContext, error) {
	membership, err := d.memberships.FindCurrentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	org, err := d.orgs.FindByID(ctx, membership.OrgID)
	if err != nil {
		return nil, err
	}

	return &rbac.OrgContext{
		OrgID:   org.ID,
		OrgName: org.Name,
		Role:    membership.Role,
	}, nil
}

// RoleForUserInOrg resolves the user's role in an explicit organization.
func (d *directory) RoleForUserInOrg(ctx context.Context, userID, orgID primitive.ObjectID) (rbac.Role, error) {
	membership, err := d.memberships.FindByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		return "", err
	}

	return membership.Role, nil
}

// classDirectory adapts the class repository to the class role resolver.
type classDirectory struct {
	classes ClassRepository
}

// NewClassDirectory creates a roster directory backed by MongoDB.
func NewClassDirectory(classes ClassRepository) rbac.ClassDirectory {
	return &classDirectory{classes: classes}
}

// RoleForUserInClass resolves the user's role on a class roster.
func (d *classDirectory) RoleForUserInClass(ctx context.Context, userID, classID primitive.ObjectID) (rbac.ClassRole, error) {
	return d.classes.RosterRole(ctx, classID, userID)
}

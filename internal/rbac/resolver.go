package rbac

import (
	"context"
	"errors"
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/observability"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_directory.go -package=mocks clubhub/internal/rbac Directory,ClassDirectory

// OrgContext is the resolved organization scope for one user: which org the
// check applies to and the role the user holds there.
type OrgContext struct {
	OrgID   primitive.ObjectID `json:"orgId"`
	OrgName string             `json:"orgName"`
	Role    Role               `json:"role"`
}

// Directory is the membership lookup boundary. Implementations return
// apperrors.ErrNotOrgMember when the user has no matching membership; any
// other error is a backend failure.
type Directory interface {
	// CurrentOrgForUser resolves the user's current organization: the
	// membership marked primary, falling back to the earliest joined.
	CurrentOrgForUser(ctx context.Context, userID primitive.ObjectID) (*OrgContext, error)
	// RoleForUserInOrg resolves the user's role in an explicit organization.
	RoleForUserInOrg(ctx context.Context, userID, orgID primitive.ObjectID) (Role, error)
}

// ClassDirectory is the roster lookup boundary for the class role scheme.
type ClassDirectory interface {
	// RoleForUserInClass resolves the user's role on a class roster.
	// Returns apperrors.ErrNotClassMember when the user is not enrolled.
	RoleForUserInClass(ctx context.Context, userID, classID primitive.ObjectID) (ClassRole, error)
}

// Outcome tags how a resolution ended. The public nil/bool helpers fold
// NotFound and Error together (fail closed); Outcome keeps the two apart
// for consumers that need the distinction.
type Outcome int

const (
	// OutcomeOK means the lookup succeeded and a role was found.
	OutcomeOK Outcome = iota
	// OutcomeNotFound means the user has no matching membership.
	OutcomeNotFound
	// OutcomeError means the lookup itself failed. Callers must treat this
	// as denial, never as proof the user lacks access.
	OutcomeError
)

// Resolver answers role questions by consulting the Directory, with a
// short-TTL in-process cache in front of explicit-org lookups. Backend
// failures are logged and counted, then folded into "not found" so every
// consumer fails closed.
type Resolver struct {
	dir     Directory
	roles   *expirable.LRU[string, Role]
	log     *logrus.Logger
	metrics *observability.Metrics
}

// NewResolver creates a Resolver. metrics may be nil in tests.
func NewResolver(dir Directory, logger *logrus.Logger, metrics *observability.Metrics, cacheSize int, cacheTTL time.Duration) *Resolver {
	return &Resolver{
		dir:     dir,
		roles:   expirable.NewLRU[string, Role](cacheSize, nil, cacheTTL),
		log:     logger,
		metrics: metrics,
	}
}

func roleCacheKey(userID, orgID primitive.ObjectID) string {
	return userID.Hex() + ":" + orgID.Hex()
}

// ResolveCurrentOrg resolves the user's current organization with a tagged
// outcome. One directory round trip; never cached, since "current" can
// change when the user switches primary org.
func (r *Resolver) ResolveCurrentOrg(ctx context.Context, userID primitive.ObjectID) (*OrgContext, Outcome) {
	org, err := r.dir.CurrentOrgForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotOrgMember) {
			return nil, OutcomeNotFound
		}
		r.countError("current_org")
		r.log.WithError(err).WithField("userId", userID.Hex()).Error("current org resolution failed")
		return nil, OutcomeError
	}
	return org, OutcomeOK
}

// CurrentOrg resolves the user's current organization, or nil when the user
// has none. Backend errors also yield nil; use ResolveCurrentOrg when the
// difference matters.
func (r *Resolver) CurrentOrg(ctx context.Context, userID primitive.ObjectID) *OrgContext {
	org, outcome := r.ResolveCurrentOrg(ctx, userID)
	if outcome != OutcomeOK {
		return nil
	}
	return org
}

// ResolveRole resolves the user's role in an explicit organization with a
// tagged outcome. Successful lookups are cached; misses and errors are not.
func (r *Resolver) ResolveRole(ctx context.Context, userID, orgID primitive.ObjectID) (Role, Outcome) {
	key := roleCacheKey(userID, orgID)
	if role, ok := r.roles.Get(key); ok {
		r.countCacheHit()
		return role, OutcomeOK
	}
	r.countCacheMiss()

	role, err := r.dir.RoleForUserInOrg(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotOrgMember) {
			return "", OutcomeNotFound
		}
		r.countError("role_in_org")
		r.log.WithError(err).WithFields(logrus.Fields{
			"userId": userID.Hex(),
			"orgId":  orgID.Hex(),
		}).Error("role resolution failed")
		return "", OutcomeError
	}

	r.roles.Add(key, role)
	return role, OutcomeOK
}

// RoleInOrg resolves the user's role in an explicit organization. The bool
// is false when the user is not a member or the lookup failed.
func (r *Resolver) RoleInOrg(ctx context.Context, userID, orgID primitive.ObjectID) (Role, bool) {
	role, outcome := r.ResolveRole(ctx, userID, orgID)
	return role, outcome == OutcomeOK
}

// Invalidate drops the cached role for a membership. Must be called after
// any role mutation or membership removal.
func (r *Resolver) Invalidate(userID, orgID primitive.ObjectID) {
	r.roles.Remove(roleCacheKey(userID, orgID))
}

// Purge drops every cached role. Used when memberships change out of band,
// e.g. test fixtures writing straight to the database.
func (r *Resolver) Purge() {
	r.roles.Purge()
}

// IsOwner reports whether the user owns the organization.
func (r *Resolver) IsOwner(ctx context.Context, userID, orgID primitive.ObjectID) bool {
	return r.hasMinRole(ctx, userID, orgID, RoleOwner)
}

// IsAdminOrOwner reports whether the user can manage organization
// membership and settings.
func (r *Resolver) IsAdminOrOwner(ctx context.Context, userID, orgID primitive.ObjectID) bool {
	return r.hasMinRole(ctx, userID, orgID, RoleAdmin)
}

// CanManageContent reports whether the user can create and edit content in
// the organization. The coach threshold is a policy decision, not a
// convenience.
func (r *Resolver) CanManageContent(ctx context.Context, userID, orgID primitive.ObjectID) bool {
	return r.hasMinRole(ctx, userID, orgID, RoleCoach)
}

func (r *Resolver) hasMinRole(ctx context.Context, userID, orgID primitive.ObjectID, required Role) bool {
	role, ok := r.RoleInOrg(ctx, userID, orgID)
	if !ok {
		return false
	}
	return HasPermission(role, required)
}

func (r *Resolver) countError(operation string) {
	if r.metrics != nil {
		r.metrics.ResolverErrorsTotal.WithLabelValues(operation).Inc()
	}
}

func (r *Resolver) countCacheHit() {
	if r.metrics != nil {
		r.metrics.RoleCacheHitsTotal.Inc()
	}
}

func (r *Resolver) countCacheMiss() {
	if r.metrics != nil {
		r.metrics.RoleCacheMissesTotal.Inc()
	}
}

// ClassResolver answers class role questions over the ClassDirectory, with
// the same fail-closed error folding as Resolver.
type ClassResolver struct {
	dir     ClassDirectory
	log     *logrus.Logger
	metrics *observability.Metrics
}

// NewClassResolver creates a ClassResolver. metrics may be nil in tests.
func NewClassResolver(dir ClassDirectory, logger *logrus.Logger, metrics *observability.Metrics) *ClassResolver {
	return &ClassResolver{dir: dir, log: logger, metrics: metrics}
}

// ResolveRole resolves the user's role on a class roster with a tagged
// outcome.
func (r *ClassResolver) ResolveRole(ctx context.Context, userID, classID primitive.ObjectID) (ClassRole, Outcome) {
	role, err := r.dir.RoleForUserInClass(ctx, userID, classID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotClassMember) {
			return "", OutcomeNotFound
		}
		if r.metrics != nil {
			r.metrics.ResolverErrorsTotal.WithLabelValues("role_in_class").Inc()
		}
		r.log.WithError(err).WithFields(logrus.Fields{
			"userId":  userID.Hex(),
			"classId": classID.Hex(),
		}).Error("class role resolution failed")
		return "", OutcomeError
	}
	return role, OutcomeOK
}

// RoleInClass resolves the user's role on a class roster. The bool is false
// when the user is not enrolled or the lookup failed.
func (r *ClassResolver) RoleInClass(ctx context.Context, userID, classID primitive.ObjectID) (ClassRole, bool) {
	role, outcome := r.ResolveRole(ctx, userID, classID)
	return role, outcome == OutcomeOK
}

// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "clubhub/swagger" // Import generated swagger docs

	"clubhub/internal/handler"
	"clubhub/internal/middleware"
	"clubhub/internal/observability"
	"clubhub/internal/rbac"
	"clubhub/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	OrgHandler         *handler.OrganizationHandler
	MembershipHandler  *handler.MembershipHandler
	InvitationHandler  *handler.InvitationHandler
	ContentHandler     *handler.ContentHandler
	ClassHandler       *handler.ClassHandler
	PermissionsHandler *handler.PermissionsHandler
	JWTManager         *auth.JWTManager
	Resolver           *rbac.Resolver
	ClassResolver      *rbac.ClassResolver
	Metrics            *observability.Metrics
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Global middleware
	r.Use(middleware.CORS())
	r.Use(middleware.Tracing())
	r.Use(middleware.RequestMetrics(cfg.Metrics))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	r.GET("/metrics", cfg.Metrics.Handler())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// guard builds an org role check scoped by the orgId path parameter.
	guard := func(p rbac.Permission) gin.HandlerFunc {
		return middleware.RequireOrgRole(cfg.Resolver, cfg.Metrics, middleware.GuardConfig{
			Permission: p,
			OrgParam:   "orgId",
		})
	}
	rosterGuard := middleware.AllowOrgManagersOr(
		middleware.RequireClassRole(cfg.ClassResolver, cfg.Metrics, rbac.ClassPermManageRoster),
	)
	resultsGuard := middleware.AllowOrgManagersOr(
		middleware.RequireClassRole(cfg.ClassResolver, cfg.Metrics, rbac.ClassPermRecordResults),
	)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Current user routes (protected)
		me := v1.Group("/me")
		me.Use(middleware.Auth(cfg.JWTManager))
		{
			me.GET("", cfg.UserHandler.GetMe)
			me.PUT("", cfg.UserHandler.UpdateMe)
			me.DELETE("", cfg.UserHandler.DeleteMe)
			me.GET("/permissions", cfg.PermissionsHandler.GetMyPermissions)
		}

		// User invitation routes (protected)
		invitations := v1.Group("/invitations")
		invitations.Use(middleware.Auth(cfg.JWTManager))
		{
			invitations.GET("", cfg.InvitationHandler.ListMyInvitations)
			invitations.POST("/accept", cfg.InvitationHandler.AcceptInvitation)
			invitations.POST("/:id/decline", cfg.InvitationHandler.DeclineInvitation)
		}

		// Organization routes (protected)
		orgs := v1.Group("/orgs")
		orgs.Use(middleware.Auth(cfg.JWTManager))
		{
			orgs.POST("", cfg.OrgHandler.CreateOrganization)
			orgs.GET("", cfg.OrgHandler.ListMyOrganizations)

			orgWithID := orgs.Group("/:orgId")
			{
				// Switching the current org only needs authentication; the
				// service verifies the membership itself.
				orgWithID.POST("/primary", cfg.MembershipHandler.SetPrimary)

				orgWithID.GET("", guard(rbac.PermViewContent), cfg.OrgHandler.GetOrganization)
				orgWithID.PUT("", guard(rbac.PermManageOrganization), cfg.OrgHandler.UpdateOrganization)
				orgWithID.DELETE("", guard(rbac.PermManageOrganization), cfg.OrgHandler.DeleteOrganization)
				orgWithID.POST("/transfer", guard(rbac.PermManageOrganization), cfg.OrgHandler.TransferOwnership)
				orgWithID.GET("/stats", guard(rbac.PermViewAnalytics), cfg.OrgHandler.GetStats)

				// Members
				members := orgWithID.Group("/members")
				{
					members.GET("", guard(rbac.PermViewContent), cfg.MembershipHandler.ListMembers)
					members.GET("/:userId", guard(rbac.PermViewContent), cfg.MembershipHandler.GetMember)
					members.DELETE("/:userId", guard(rbac.PermManageMembers), cfg.MembershipHandler.RemoveMember)
					members.PUT("/:userId/role", guard(rbac.PermManageMembers), cfg.MembershipHandler.UpdateRole)
					members.POST("/leave", guard(rbac.PermViewContent), cfg.MembershipHandler.Leave)
				}

				// Organization invitations
				orgInvitations := orgWithID.Group("/invitations")
				orgInvitations.Use(guard(rbac.PermInviteMembers))
				{
					orgInvitations.POST("", cfg.InvitationHandler.CreateInvitation)
					orgInvitations.GET("", cfg.InvitationHandler.ListOrgInvitations)
					orgInvitations.DELETE("/:id", cfg.InvitationHandler.CancelInvitation)
				}

				// Content
				content := orgWithID.Group("/content")
				{
					content.POST("", guard(rbac.PermCreateContent), cfg.ContentHandler.CreateContent)
					content.GET("", guard(rbac.PermViewContent), cfg.ContentHandler.ListContent)
					content.GET("/:id", guard(rbac.PermViewContent), cfg.ContentHandler.GetContent)
					content.PUT("/:id", guard(rbac.PermUpdateContent), cfg.ContentHandler.UpdateContent)
					content.POST("/:id/publish", guard(rbac.PermUpdateContent), cfg.ContentHandler.PublishContent)
					content.DELETE("/:id", guard(rbac.PermDeleteContent), cfg.ContentHandler.DeleteContent)
				}

				// Classes
				classes := orgWithID.Group("/classes")
				{
					classes.POST("", guard(rbac.PermCreateContent), cfg.ClassHandler.CreateClass)
					classes.GET("", guard(rbac.PermViewContent), cfg.ClassHandler.ListClasses)
					classes.GET("/:classId", guard(rbac.PermViewContent), cfg.ClassHandler.GetClass)
					classes.PUT("/:classId", guard(rbac.PermManageMembers), cfg.ClassHandler.RenameClass)
					classes.DELETE("/:classId", guard(rbac.PermManageMembers), cfg.ClassHandler.DeleteClass)

					// Roster mutations: class teachers, or org roles that can
					// manage members.
					roster := classes.Group("/:classId/roster")
					roster.Use(guard(rbac.PermViewContent), rosterGuard)
					{
						roster.POST("", cfg.ClassHandler.AddRosterEntry)
						roster.DELETE("/:userId", cfg.ClassHandler.RemoveRosterEntry)
					}

					// Results: class teachers, or org roles that can
					// manage members.
					results := classes.Group("/:classId/results")
					results.Use(guard(rbac.PermViewContent), resultsGuard)
					{
						results.POST("", cfg.ClassHandler.RecordResult)
					}
				}
			}
		}
	}

	return r
}
